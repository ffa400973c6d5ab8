package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/uniomni/survey/internal/errors"
)

func TestNewTable(t *testing.T) {
	t.Run("pads shorter header row", func(t *testing.T) {
		table, err := NewTable(
			[]string{"Q1"},
			[]string{"need", "access", "sustain"},
			[][]string{{"Agree", "Agree", "Agree"}},
		)
		require.NoError(t, err)
		assert.Equal(t, 3, table.NumColumns())
		assert.Equal(t, "Q1", table.Question(0))
		assert.Equal(t, "", table.Question(2))
	})

	t.Run("no respondents", func(t *testing.T) {
		table, err := NewTable([]string{"Q1"}, []string{"need"}, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, table.NumRows())
		assert.Empty(t, table.Cells(0))
	})

	t.Run("empty header", func(t *testing.T) {
		_, err := NewTable(nil, nil, nil)
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeFormat))
	})

	t.Run("ragged row reports file row number", func(t *testing.T) {
		_, err := NewTable([]string{"A", "B"}, []string{"a", "b"}, [][]string{{"1", "2"}, {"1"}})
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrTypeConsistency, appErr.Type)
		assert.Equal(t, 4, appErr.Context["row"])
	})
}

func TestTable_CellsIsCopy(t *testing.T) {
	table, err := NewTable([]string{"A"}, []string{"a"}, [][]string{{"Agree"}})
	require.NoError(t, err)

	cells := table.Cells(0)
	cells[0] = "Disagree"

	assert.Equal(t, []string{"Agree"}, table.Cells(0))
}
