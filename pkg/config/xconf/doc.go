// Package xconf 加载 Roller 配置文档，基于 koanf 实现。
//
// # 文档格式
//
//	rollers:
//	  app:
//	    kind: fixed_window          # 默认 fixed_window
//	    pattern: archive/app.{yyyy-mm-dd}.{}.log.gz
//	    base: 1                     # 可选，默认 0
//	    count: 5                    # fixed_window 必填
//	    mode: shift                 # append | shift，默认 append
//	    background: true
//	    lock_file: archive/.lock
//
// 支持 YAML（.yaml/.yml）与 JSON（.json），按扩展名识别。
// Roller 名称不能包含 "."。
//
// # 严格解码
//
// 未知字段返回 [ErrUnknownField]；类型不匹配（包括负数）返回 [ErrDecodeFailed]，
// 不做弱类型转换；fixed_window 缺少 count 或 pattern 返回 [ErrMissingField]。
//
// # 并发安全
//
// Reload 串行执行，解析与校验全部成功后才原子替换当前快照；失败时保留旧配置。
// 读取方法无锁，始终看到某个完整的快照。
//
// # 配置监视
//
// [Watch] 基于 fsnotify 监视配置文件所在目录，内置防抖，兼容编辑器的原子写入。
// 从字节数据创建的 Document 不支持监视与重载。
package xconf
