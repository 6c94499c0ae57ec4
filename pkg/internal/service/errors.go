package service

import "errors"

// 目录服务错误哨兵. 处理层用 errors.Is 将其映射为 HTTP 状态码.
var (
	// ErrValidation 输入不合法.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound 归档不存在.
	ErrNotFound = errors.New("archive not found")
	// ErrStorageWrite 对象存储写入失败.
	ErrStorageWrite = errors.New("storage write failed")
	// ErrStorageRead 对象存储读取失败.
	ErrStorageRead = errors.New("storage read failed")
	// ErrStorageDelete 对象存储删除失败.
	ErrStorageDelete = errors.New("storage delete failed")
	// ErrMetadataWrite 元数据写入失败.
	ErrMetadataWrite = errors.New("metadata write failed")
	// ErrMetadataRead 元数据读取失败.
	ErrMetadataRead = errors.New("metadata read failed")
	// ErrMetadataDelete 元数据删除失败.
	ErrMetadataDelete = errors.New("metadata delete failed")
)
