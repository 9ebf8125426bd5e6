package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Executive Overview":       "executive-overview",
		"KPIs (FY 2024) / Q3.":     "kpis-fy-2024-q3",
		"ภาพรวมสรุปสำหรับผู้บริหาร": "",
		"  --Already--slugged-- ":  "already-slugged",
	}
	for in, want := range tests {
		assert.Equal(t, want, slugify(in), in)
	}
}

func TestWrite(t *testing.T) {
	t.Run("Should write one file per slide and an index", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "deck")
		deck := []string{
			"**📊**\n### **Executive Overview**\n*   Revenue up 15%",
			"### ภาพรวม\n*   กำไรสุทธิ 12%",
			"no heading at all",
		}
		res, err := Write(dir, "statement.png", deck)
		require.NoError(t, err)
		require.Len(t, res.Pages, 3)

		assert.Equal(t, "01-executive-overview", res.Pages[0].Slug)
		assert.Equal(t, "Executive Overview", res.Pages[0].Title)
		assert.Equal(t, "02-slide", res.Pages[1].Slug)
		assert.Equal(t, "ภาพรวม", res.Pages[1].Title)
		assert.Equal(t, "03-slide-3", res.Pages[2].Slug)

		first, err := os.ReadFile(res.Pages[0].File)
		require.NoError(t, err)
		assert.Contains(t, string(first), "title: \"Executive Overview\"")
		assert.Contains(t, string(first), "slide: 1\ntotal: 3")
		assert.Contains(t, string(first), "*   Revenue up 15%")

		index, err := os.ReadFile(filepath.Join(dir, "index.md"))
		require.NoError(t, err)
		assert.Contains(t, string(index), "Generated from statement.png")
		assert.Contains(t, string(index), "1. [Executive Overview](./01-executive-overview.md)")
		assert.Contains(t, string(index), "3. [Slide 3](./03-slide-3.md)")
	})

	t.Run("Should refuse an empty deck", func(t *testing.T) {
		_, err := Write(t.TempDir(), "x.png", nil)
		assert.ErrorIs(t, err, ErrNoSlides)
	})
}
