package db

import "time"

// MoodEntry 是心情记录在 sqlite 中的行结构
// 自增 ID 即写入顺序，记录只追加不修改
type MoodEntry struct {
	ID        uint   `gorm:"primaryKey"`
	Mood      string `gorm:"size:32;not null"`
	Emoji     string `gorm:"size:16"`
	Note      string `gorm:"type:text"`
	Timestamp string `gorm:"size:19;index"`
	CreatedAt time.Time
}

// TableName 指定自定义表名。
func (MoodEntry) TableName() string {
	return "mood_entries"
}
