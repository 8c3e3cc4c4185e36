package xrotate_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/omeyang/xroll/pkg/observability/xroll"
	"github.com/omeyang/xroll/pkg/observability/xrotate"
)

func ExampleNewFile() {
	dir, err := os.MkdirTemp("", "xrotate-example-")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	roller, err := xroll.NewFixedWindow(filepath.Join(dir, "app.{}.log"), 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 活动文件超过 16 字节后轮转
	trigger := xrotate.TriggerFunc(func(size int64) (bool, xroll.RollType) {
		return size > 16, xroll.RollToday
	})
	rot, err := xrotate.NewFile(filepath.Join(dir, "app.log"), roller, xrotate.WithTrigger(trigger))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, line := range []string{"first line\n", "second line\n", "third\n"} {
		if _, err := rot.Write([]byte(line)); err != nil {
			fmt.Println("error:", err)
		}
	}
	if err := rot.Close(); err != nil {
		fmt.Println("error:", err)
	}

	archived, _ := os.ReadFile(filepath.Join(dir, "app.0.log"))
	active, _ := os.ReadFile(filepath.Join(dir, "app.log"))
	fmt.Printf("%q\n%q\n", archived, active)
	// Output:
	// "first line\nsecond line\n"
	// "third\n"
}
