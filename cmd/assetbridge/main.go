// assetbridge 资产链扩展桥命令行工具
//
// 查看扩展调用目录、解码状态码、运行与回放调用场景。
package main

func main() {
	Execute()
}
