//go:build !linux

package wimage

import "fmt"

func ShmOpen(size int) (shmid, addr uintptr, buf []byte, err error) {
	return 0, 0, nil, fmt.Errorf("shm: not available on this platform")
}

func ShmClose(shmid, addr uintptr) error {
	return nil
}
