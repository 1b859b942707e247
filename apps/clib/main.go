package main

import "C"
import (
	"log"
	"os"
	"unsafe"

	"github.com/tutils/tprng/cmd"
	"github.com/tutils/tprng/crypt/xor"
	"github.com/tutils/tprng/prng/lcg"
)

//export RunCmd
func RunCmd(cargs **C.char, size C.int) {
	log.SetFlags(log.Ltime | log.Lshortfile)

	// Convert the C string array to a Go []string.
	args := os.Args[:1]
	ptr := unsafe.Pointer(cargs)
	for i := 0; i < int(size); i++ {
		cStrPtr := (**C.char)(unsafe.Pointer(uintptr(ptr) + uintptr(i)*unsafe.Sizeof(uintptr(0))))
		args = append(args, C.GoString(*cStrPtr))
	}
	os.Args = args
	cmd.Execute()
}

// XorLCG XORs n bytes at buf in place with the LCG keystream for key.
// Calling it twice with the same key restores the buffer.
//
//export XorLCG
func XorLCG(buf *C.uchar, n C.int, key C.ulonglong) {
	if buf == nil || n <= 0 {
		return
	}
	data := unsafe.Slice((*byte)(unsafe.Pointer(buf)), int(n))
	g := lcg.New()
	g.SetSeed(uint64(key))
	xor.XORKeyStream(data, data, g)
}

func main() {} // required by -buildmode=c-shared
