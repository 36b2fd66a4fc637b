package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAmounts(t *testing.T) {
	t.Run("empty text", func(t *testing.T) {
		assert.Nil(t, ExtractAmounts(""))
	})

	t.Run("labeled comma grouped amount", func(t *testing.T) {
		got := ExtractAmounts("합계: 45,000원")
		require.Len(t, got, 1)
		assert.Equal(t, "합계", got[0].Label)
		assert.Equal(t, int64(45000), got[0].Value)
	})

	t.Run("bare digit run of four or more", func(t *testing.T) {
		got := ExtractAmounts("금액 1234")
		require.Len(t, got, 1)
		assert.Equal(t, "금액", got[0].Label)
		assert.Equal(t, int64(1234), got[0].Value)
	})

	t.Run("short bare digits are not amounts", func(t *testing.T) {
		assert.Empty(t, ExtractAmounts("123원"))
	})

	t.Run("zero is discarded", func(t *testing.T) {
		assert.Empty(t, ExtractAmounts("잔액 0000원"))
	})

	t.Run("multiple amounts keep their own labels", func(t *testing.T) {
		got := ExtractAmounts("점심 8,000원 저녁 12,000원")
		require.Len(t, got, 2)
		assert.Equal(t, "점심", got[0].Label)
		assert.Equal(t, int64(8000), got[0].Value)
		assert.Equal(t, "저녁", got[1].Label)
		assert.Equal(t, int64(12000), got[1].Value)
	})

	t.Run("unlabeled amount has empty label", func(t *testing.T) {
		got := ExtractAmounts("45,000원")
		require.Len(t, got, 1)
		assert.Empty(t, got[0].Label)
		assert.Equal(t, int64(45000), got[0].Value)
	})
}
