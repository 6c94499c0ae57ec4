package model

import (
	"time"
)

// 分类与上传者的哨兵默认值，创建时填充空白字段.
const (
	DefaultCategory = "Uncategorized"
	DefaultUploader = "Anonymous"
)

// Archive 归档记录模型. 一条记录描述一个已上传的文件：
// 二进制内容存放在对象存储（BlobKey 指向），元数据存放在数据库.
// 记录创建后不可变，只能整体删除. JSON 字段名保持浏览器端使用的 camelCase 线格式.
type Archive struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`
	// 上传者提供的原始文件名
	Filename string `gorm:"size:512;index" json:"filename"`
	// 对象存储键，随机令牌 + 原始文件名，在记录生命周期内必须指向存活对象
	BlobKey     string    `gorm:"size:1024;uniqueIndex" json:"blobKey"`
	Size        int64     `gorm:"index"                 json:"size"`
	UploadDate  time.Time `gorm:"index"                 json:"uploadDate"`
	ContentType string    `gorm:"size:255"              json:"contentType"`
	Description string    `gorm:"type:text"             json:"description"`
	Category    string    `gorm:"size:128;index"        json:"category"`
	Uploader    string    `gorm:"size:255"              json:"uploader"`
}

// TableName 指定表名.
func (Archive) TableName() string {
	return "archives"
}
