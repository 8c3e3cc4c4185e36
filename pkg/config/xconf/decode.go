package xconf

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/v2"

	"github.com/omeyang/xroll/pkg/observability/xroll"
)

const rollersKey = "rollers"

type document struct {
	Rollers map[string]xroll.Config `koanf:"rollers"`
}

// snapshot 一次成功加载的完整结果，创建后只读。
type snapshot struct {
	k       *koanf.Koanf
	rollers map[string]xroll.Config
	names   []string
}

func parse(data []byte, format Format) (*snapshot, error) {
	k, err := loadKoanf(data, format)
	if err != nil {
		return nil, err
	}
	raw := k.Raw()

	var doc document
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.TextUnmarshallerHookFunc(),
		Metadata:   &md,
		Result:     &doc,
		TagName:    "koanf",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}
	if len(md.Unused) > 0 {
		sort.Strings(md.Unused)
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, strings.Join(md.Unused, ", "))
	}

	names := make([]string, 0, len(doc.Rollers))
	for name, cfg := range doc.Rollers {
		if err := validate(name, cfg, rollerFields(raw, name)); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	sort.Strings(names)

	return &snapshot{k: k, rollers: doc.Rollers, names: names}, nil
}

func validate(name string, cfg xroll.Config, fields map[string]any) error {
	if cfg.KindOrDefault() != xroll.KindFixedWindow {
		return nil
	}
	for _, key := range []string{"pattern", "count"} {
		if _, ok := fields[key]; !ok {
			return fmt.Errorf("%w: %s.%s.%s", ErrMissingField, rollersKey, name, key)
		}
	}
	return nil
}

// rollerFields 返回原始文档中 name 的字段表，用于区分缺省与零值。
func rollerFields(raw map[string]any, name string) map[string]any {
	rollers, _ := raw[rollersKey].(map[string]any)
	fields, _ := rollers[name].(map[string]any)
	return fields
}
