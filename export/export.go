package export

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/katalvlaran/rivermaze/drainage"
)

// WriteHeights writes one height per line in the given order.
func WriteHeights(w io.Writer, heights []int64) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 24)
	for _, h := range heights {
		buf = strconv.AppendInt(buf[:0], h, 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteDrainage writes floor(sqrt(area)) for every cell of net, one per line,
// row-major.
func WriteDrainage(w io.Writer, net *drainage.Network) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 24)
	for _, a := range net.Area {
		buf = strconv.AppendInt(buf[:0], int64(isqrt(a)), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFiles writes heights to heightsPath and the drainage of net to
// drainagePath, creating or truncating both.
func WriteFiles(heightsPath, drainagePath string, heights []int64, net *drainage.Network) error {
	if len(heights) != net.Grid.Len() {
		return fmt.Errorf("%w: %d heights for %d cells", ErrLengthMismatch, len(heights), net.Grid.Len())
	}
	if err := writeFile(heightsPath, func(w io.Writer) error { return WriteHeights(w, heights) }); err != nil {
		return err
	}
	return writeFile(drainagePath, func(w io.Writer) error { return WriteDrainage(w, net) })
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("export: writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: closing %s: %w", path, err)
	}
	return nil
}

// isqrt returns floor(sqrt(n)) for n >= 0.
func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
