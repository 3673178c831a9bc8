package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddOne_NewProduct(t *testing.T) {
	s := NewStore()

	s.AddOne("p1")

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p1", lines[0].ProductID)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestAddOne_ExistingProductIncrements(t *testing.T) {
	s := NewStore()

	s.AddOne("p1")
	s.AddOne("p1")
	s.AddOne("p1")

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestRemoveOne_DecrementsQuantity(t *testing.T) {
	s := NewStore()
	s.AddOne("p1")
	s.AddOne("p1")

	s.RemoveOne("p1")

	assert.Equal(t, 1, s.Quantity("p1"))
}

func TestRemoveOne_DeletesLineAtZero(t *testing.T) {
	s := NewStore()
	s.AddOne("p1")

	s.RemoveOne("p1")

	assert.Empty(t, s.Lines())
	assert.Equal(t, 0, s.Quantity("p1"))
}

func TestRemoveOne_UnknownProductIsNoop(t *testing.T) {
	s := NewStore()
	s.AddOne("p1")

	s.RemoveOne("missing")

	require.Len(t, s.Lines(), 1)
	assert.Equal(t, 1, s.Quantity("p1"))
}

func TestClear_EmptiesAllLines(t *testing.T) {
	s := NewStore()
	s.AddOne("p1")
	s.AddOne("p2")
	s.AddOne("p2")

	s.Clear()

	assert.Empty(t, s.Lines())
}

func TestStore_QuantityNeverNegative(t *testing.T) {
	s := NewStore()

	// Arbitrary interleaving of adds and removes, including removes on
	// empty and absent products.
	ops := []struct {
		add bool
		id  string
	}{
		{false, "a"},
		{true, "a"}, {true, "a"}, {false, "a"},
		{true, "b"}, {false, "b"}, {false, "b"},
		{true, "c"}, {false, "a"}, {false, "a"},
	}

	for _, op := range ops {
		if op.add {
			s.AddOne(op.id)
		} else {
			s.RemoveOne(op.id)
		}
		for _, line := range s.Lines() {
			assert.GreaterOrEqual(t, line.Quantity, 1, "line %s must keep quantity >= 1", line.ProductID)
		}
	}

	// Quantity of 0 implies the line is absent.
	assert.Equal(t, 0, s.Quantity("a"))
	assert.Equal(t, 0, s.Quantity("b"))
	for _, line := range s.Lines() {
		assert.NotEqual(t, "a", line.ProductID)
		assert.NotEqual(t, "b", line.ProductID)
	}
}

func TestLines_ReturnsCopy(t *testing.T) {
	s := NewStore()
	s.AddOne("p1")

	lines := s.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, s.Quantity("p1"))
}
