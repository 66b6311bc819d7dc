//go:build tinygo || (js && wasm)

package extension

import "unsafe"

// 🔧 TinyGo 0.31+ 要求 //go:wasmimport 函数只有声明

//go:wasmimport seal0 seal_call_chain_extension
func sealCallChainExtension(funcID, inputPtr, inputLen, outputPtr, outputLenPtr uint32) uint32

func callChainExtension(funcID uint32, input []byte, output []byte) (uint32, uint32) {
	var inputPtr, outputPtr uint32
	if len(input) > 0 {
		inputPtr = uint32(uintptr(unsafe.Pointer(unsafe.SliceData(input))))
	}
	if len(output) > 0 {
		outputPtr = uint32(uintptr(unsafe.Pointer(unsafe.SliceData(output))))
	}
	outputLen := uint32(len(output))

	status := sealCallChainExtension(
		funcID,
		inputPtr, uint32(len(input)),
		outputPtr, uint32(uintptr(unsafe.Pointer(&outputLen))),
	)
	return status, outputLen
}
