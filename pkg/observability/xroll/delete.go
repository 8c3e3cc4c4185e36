package xroll

// DeleteRoller 直接删除活动文件，不保留归档。
type DeleteRoller struct{}

// Roll 删除 file。file 不存在时返回包装 [ErrRotation] 的错误。
func (DeleteRoller) Roll(file string, _ RollType) error {
	return removeFile(file)
}
