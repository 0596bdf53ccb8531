package gcx

import (
	"testing"

	"github.com/nordlow/druntime/galloc/sizeclass"
)

func BenchmarkQalloc_ThreadLocal(b *testing.B) {
	g := New(sizeclass.SmallOnly)
	for i := 0; i < b.N; i++ {
		if _, err := g.Qalloc(16, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkQalloc_Global(b *testing.B) {
	g := Global()
	for i := 0; i < b.N; i++ {
		if _, err := g.Qalloc(16, 0); err != nil {
			b.Fatal(err)
		}
	}
}
