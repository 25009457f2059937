package engine

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

func BenchmarkCheckLines(b *testing.B) {
	rules := DefaultRules()
	for _, imports := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("imports_%d", imports), func(b *testing.B) {
			var sb strings.Builder
			sb.WriteString(wellFormedHeader)
			for i := 0; i < imports; i++ {
				fmt.Fprintf(&sb, "import Mathlib.Module%d\n", i)
			}
			sb.WriteString("/-!\n# Doc\n-/\n")
			lines := rawLines(sb.String())

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := CheckLines(context.Background(), "F.lean", lines, rules); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
