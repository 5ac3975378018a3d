package audioin

import (
	"bytes"
	"fmt"
	"io"
)

func ExampleWAVDecoder() {
	data := wavBytes(44100, 1, []int16{16384, -16384, 8192})

	src, err := WAVDecoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		fmt.Println(err)
		return
	}
	defer src.Close()

	fmt.Printf("rate=%d channels=%d\n", src.SampleRate(), src.Channels())

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		fmt.Println(err)
		return
	}
	fmt.Println(dst[:n])

	// Output:
	// rate=44100 channels=1
	// [0.5 -0.5 0.25]
}
