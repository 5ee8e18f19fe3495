package checksum

import (
	"strings"
	"testing"
)

// BenchmarkCalculateRaw benchmarks raw checksum calculation
func BenchmarkCalculateRaw(b *testing.B) {
	calculator := New()
	content := []byte(strings.Repeat("        ownUrl: \"https://handpan.co.kr/shop/?idx=75\",\n", 100))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		calculator.CalculateRaw(content)
	}
}

// BenchmarkCalculateNormalized benchmarks normalized checksum calculation
func BenchmarkCalculateNormalized(b *testing.B) {
	calculator := New()
	content := []byte(strings.Repeat("        ownUrl: \"https://handpan.co.kr/shop/?idx=75\",  \r\n", 100))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		calculator.CalculateNormalized(content)
	}
}
