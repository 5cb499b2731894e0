package search

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var kernels = []Kernel{KernelPacked, KernelGeneric}

func TestSimpleIndex(t *testing.T) {
	for _, tt := range []struct {
		needle   []byte
		haystack []byte
		index    int64
	}{
		{
			[]byte{4, 1, 3},
			[]byte{
				0, 0, 0, 4, 1, 3, 0, 0,
				0, 4, 1, 3, 0, 0, 0, 0,
				0, 0, 0, 0, 0, 0, 0, 0,
				0, 0, 0, 0, 0, 0, 0, 0,
			},
			int64(3),
		},
		{
			[]byte(`amet`),
			[]byte(`Lorem ipsum dolor sit amet, consectetur adipiscing elit integer.`),
			int64(22),
		},
		{
			[]byte(`consectetur`),
			[]byte(`Lorem ipsum dolor sit amet, consectetur adipiscing elit integer.`),
			int64(28),
		},
		{
			[]byte(`no match`),
			[]byte(`Lorem ipsum dolor sit amet, consectetur adipiscing elit integer.`),
			int64(-1),
		},
		{
			[]byte(`float`),
			[]byte(`Lorem ipsum dolor sit amet, cons|ctetur adipiscing elit integer float.`),
			int64(64),
		},
		{
			[]byte(` bar`),
			[]byte(`bazz bar some more words to hit thirty two bytes`),
			int64(4),
		},
		// Zero-length needle matches at 0 like bytes.Index.
		{
			[]byte{},
			[]byte{1, 2, 3},
			int64(0),
		},
		// Short haystack with a match.
		{
			[]byte{1, 2, 3},
			[]byte{0, 0, 1, 2, 3, 0, 0, 0, 9, 9, 9, 9},
			int64(2),
		},
		// Short haystack without a match.
		{
			[]byte{7, 7, 7},
			[]byte{0, 1, 2, 3, 4, 5, 6, 8, 8, 8},
			int64(-1),
		},
		// Needle longer than haystack.
		{
			[]byte{1, 2, 3, 4, 5},
			[]byte{1, 2, 3, 4},
			int64(-1),
		},
		// Match ends on the last byte.
		{
			[]byte(`integer.`),
			[]byte(`Lorem ipsum dolor sit amet, consectetur adipiscing elit integer.`),
			int64(56),
		},
		{
			[]byte(`c`),
			[]byte(`abc`),
			int64(2),
		},
	} {
		t.Run(fmt.Sprintf("`%s` in `%s`", tt.needle, tt.haystack), func(t *testing.T) {
			i := Index(tt.haystack, tt.needle)
			require.Equal(t, tt.index, i)

			for _, k := range kernels {
				m := Guard(kernelMatcher{kernel: k})
				require.Equal(t, tt.index, toInt64(m.Index(tt.haystack, tt.needle)), k.String())
			}
		})
	}
}

func TestSpecial(t *testing.T) {
	in := []byte(`foo buzz bar`)
	ls := []byte(`foo `)
	i := Index(in, ls)
	require.Equal(t, int64(0), i)

	// The sub-slice keeps the capacity of in.
	in = in[len(ls):]
	require.Equal(t, string(in), "buzz bar")

	ls = []byte(` bar`)
	i = Index(in, ls)
	require.Equal(t, int64(4), i)

	ls = []byte(`bar`)
	i = Index(in[:7], ls)
	require.Equal(t, int64(-1), i)
}

func TestMask(t *testing.T) {
	for _, tt := range []struct {
		name     string
		needle   []byte
		haystack []byte
		index    int64
	}{
		{
			"chunk second match",
			[]byte{4, 1, 3},
			[]byte{
				0, 0, 0, 4, 2, 3, 0, 0,
				0, 4, 1, 3, 0, 0, 0, 0,
				0, 0, 0, 0, 0, 0, 0, 0,
				0, 0, 0, 0, 0, 0, 0, 0,
			},
			int64(9),
		},
		{
			"chunk first match",
			[]byte{4, 1, 3},
			[]byte{
				0, 0, 0, 4, 1, 3, 0, 0,
				0, 4, 1, 3, 0, 0, 0, 0,
				0, 0, 0, 0, 0, 0, 0, 0,
				0, 0, 0, 0, 0, 0, 0, 0,
			},
			int64(3),
		},
		{
			"no match",
			[]byte{4, 5, 3},
			[]byte{
				0, 0, 0, 4, 1, 3, 0, 0,
				0, 4, 1, 3, 0, 0, 0, 0,
				0, 0, 0, 0, 0, 0, 0, 0,
				0, 0, 0, 0, 0, 0, 0, 0,
			},
			int64(-1),
		},
		{
			"longer chunk",
			[]byte{4, 1, 3, 3},
			[]byte{
				0, 0, 0, 4, 1, 3, 0, 0,
				0, 4, 1, 3, 3, 0, 0, 0,
				0, 0, 0, 0, 0, 0, 0, 0,
				0, 0, 0, 0, 0, 0, 0, 0,
			},
			int64(9),
		},
		{
			"hash bytes match, needle does not",
			[]byte{4, 9, 3},
			[]byte{
				0, 0, 0, 4, 1, 3, 0, 0,
				0, 4, 2, 3, 0, 0, 0, 0,
				0, 0, 0, 0, 0, 0, 0, 0,
				0, 4, 9, 3, 0, 0, 0, 0,
			},
			int64(25),
		},
		{
			"text chunk",
			[]byte(`amet`),
			[]byte(`Lorem ipsum dolor sit amet, consectetur adipiscing elit integer.`),
			int64(22),
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			r1, r2 := rareNeedleBytes(tt.needle)
			index := toInt64(indexPacked(tt.haystack, tt.needle, r1, r2))
			require.Equal(t, tt.index, index)
			if index != -1 {
				end := index + int64(len(tt.needle))
				require.ElementsMatch(t, tt.needle, tt.haystack[index:end])
			}
		})
	}
}

func BenchmarkIndexSmall(b *testing.B) {
	needle := []byte("goldner7875")
	haystack := loadHaystack(1_000, "goldner7875")

	for _, k := range kernels {
		m := Guard(kernelMatcher{kernel: k})
		b.Run(k.String(), func(b *testing.B) {
			for n := 0; n < b.N; n++ {
				i := m.Index(haystack, needle)
				if i == NotFound {
					b.Fail()
				}
				b.SetBytes(int64(i) + int64(len(needle)))
			}
		})
	}
}

func BenchmarkIndexBig(b *testing.B) {
	// log line 200,000.
	needle := []byte(`40.42.170.227 - jast6265 [02/May/2023:10:20:14 +0000] "POST /markets/transition/enable/deploy HTTP/2.0" 203 13601`)
	haystack := loadHaystack(200_000, string(needle))

	for _, k := range kernels {
		m := Guard(kernelMatcher{kernel: k})
		b.Run(k.String(), func(b *testing.B) {
			for n := 0; n < b.N; n++ {
				i := m.Index(haystack, needle)
				if i == NotFound {
					b.Fail()
				}
				b.SetBytes(int64(i) + int64(len(needle)))
			}
		})
	}
}

// loadHaystack generates lines of access logs with last as the final line.
func loadHaystack(lines int, last string) []byte {
	rnd := rand.New(rand.NewSource(42))
	methods := []string{"GET", "POST", "PUT", "DELETE"}
	paths := []string{"/api/v1/push", "/markets/transition", "/loki/api/v1/query_range", "/metrics"}

	var sb strings.Builder
	for i := 0; i < lines-1; i++ {
		fmt.Fprintf(&sb, "%d.%d.%d.%d - user%d [02/May/2023:10:%02d:%02d +0000] \"%s %s HTTP/1.1\" %d %d\n",
			rnd.Intn(256), rnd.Intn(256), rnd.Intn(256), rnd.Intn(256),
			rnd.Intn(10_000), rnd.Intn(60), rnd.Intn(60),
			methods[rnd.Intn(len(methods))], paths[rnd.Intn(len(paths))],
			200+rnd.Intn(4), rnd.Intn(20_000))
	}
	sb.WriteString(last)
	sb.WriteByte('\n')
	return []byte(sb.String())
}
