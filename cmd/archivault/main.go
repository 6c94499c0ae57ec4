// Package main 启动应用程序
package main

import "github.com/yeisme/archivault/pkg/cmd"

//	@title			Archivault API
//	@version		1.0
//	@description	Archivault 是一个文件归档服务：文件内容写入对象存储，元数据写入数据库，浏览器前端提供检索、下载与删除.

//	@license.name	MIT
//	@license.url	https://opensource.org/license/mit/

func main() {
	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}
