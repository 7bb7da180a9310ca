//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/Gunvolt24/swiftcart/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeCandidates — n товаров с числовыми id 1..n (как отдаёт каталог).
func MakeCandidates(n int) []domain.Candidate {
	out := make([]domain.Candidate, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, domain.Candidate{
			ID:    i,
			Title: fmt.Sprintf("Product %d", i),
			Price: 10.5 * float64(i),
			Image: fmt.Sprintf("https://img.example/%d.png", i),
		})
	}
	return out
}

// AddCommand — сообщение "положить товар в корзину".
func AddCommand(c domain.Candidate) domain.Command {
	return domain.Command{Op: domain.OpAdd, Product: &c}
}
