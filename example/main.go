// Command example demonstrates the basic hashindex lifecycle: build a
// table in memory, persist it, and reload it.
package main

import (
	"encoding/binary"
	"fmt"
	"log"
	"os"

	"github.com/archivekit/hashindex"
)

func main() {
	path := "example.idx"
	os.Remove(path)

	idx, err := hashindex.Init(0, 8, 8)
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	defer idx.Free()

	fmt.Println("index opened successfully")

	for i := 0; i < 10; i++ {
		key := make([]byte, 8)
		value := make([]byte, 8)
		binary.LittleEndian.PutUint64(key, uint64(i))
		binary.LittleEndian.PutUint64(value, uint64(i*100))
		if err := idx.Set(key, value); err != nil {
			log.Fatalf("set %d: %v", i, err)
		}
	}
	fmt.Println("inserted 10 key-value pairs")

	for i := 0; i < 15; i += 2 {
		key := make([]byte, 8)
		binary.LittleEndian.PutUint64(key, uint64(i))
		if value, ok := idx.Get(key); ok {
			fmt.Printf("key %d => value %d\n", i, binary.LittleEndian.Uint64(value))
		} else {
			fmt.Printf("key %d not found\n", i)
		}
	}

	key := make([]byte, 8)
	binary.LittleEndian.PutUint64(key, 2)
	newValue := make([]byte, 8)
	binary.LittleEndian.PutUint64(newValue, 999)
	if err := idx.Set(key, newValue); err != nil {
		log.Fatalf("update: %v", err)
	}
	if value, ok := idx.Get(key); ok {
		fmt.Printf("updated key 2 => value %d\n", binary.LittleEndian.Uint64(value))
	}

	if err := hashindex.Write(idx, path); err != nil {
		log.Fatalf("write: %v", err)
	}
	fmt.Printf("wrote %d bytes to %s\n", idx.ByteSize(), path)

	reloaded, err := hashindex.Read(path)
	if err != nil {
		log.Fatalf("read: %v", err)
	}
	defer reloaded.Free()
	fmt.Printf("reloaded index has %d live entries\n", reloaded.Len())
}
