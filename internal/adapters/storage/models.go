package storage

// TagModel is the GORM model for the tags table
type TagModel struct {
	ID       int64  `gorm:"primaryKey"`
	Name     string `gorm:"not null;unique"`
	ToDelete bool   `gorm:"column:to_delete;not null;default:false"`
}

// TableName specifies the table name for GORM
func (TagModel) TableName() string { return "tags" }

// BlockModel is the GORM model for the time_blocks table.
// Start and End hold encoded timestamps, see encodeTime.
type BlockModel struct {
	End     string `gorm:"column:end;not null"`
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Running bool   `gorm:"not null;default:false"`
	Start   string `gorm:"column:start;not null"`
	Tag     *int64 `gorm:"column:tag"`
}

// TableName specifies the table name for GORM
func (BlockModel) TableName() string { return "time_blocks" }

// AppInfoModel is the GORM model for the app_info key/value table
type AppInfoModel struct {
	ID    int64  `gorm:"primaryKey"`
	Key   string `gorm:"not null;unique"`
	Value string `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (AppInfoModel) TableName() string { return "app_info" }

// blockRow is the result row of a block query joined with its tag
type blockRow struct {
	End     string
	ID      int64
	Running bool
	Start   string
	TagID   *int64
	TagName *string
	TagRef  *int64
}
