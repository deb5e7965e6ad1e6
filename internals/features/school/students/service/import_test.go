package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowToRequest(t *testing.T) {
	req := rowToRequest([]string{
		" S-001 ", " Budi Santoso ", " Male ", "2010-04-15", " 0812000 ", " Jl. Merdeka 1 ", " budi@example.com ",
	})

	assert.Equal(t, "S-001", req.StudentCode)
	assert.Equal(t, "Budi Santoso", req.FullName)
	assert.Equal(t, "male", req.Gender)
	assert.Equal(t, "0812000", req.Phone)
	assert.Equal(t, "Jl. Merdeka 1", req.Address)
	assert.Equal(t, "budi@example.com", req.Email)

	require.NotNil(t, req.BirthDate)
	assert.Equal(t, time.Date(2010, 4, 15, 0, 0, 0, 0, time.UTC), req.BirthDate.UTC())
}

func TestRowToRequestToleratesBadBirthDate(t *testing.T) {
	req := rowToRequest([]string{"S-002", "Siti", "female", "15/04/2010", "", "", "siti@example.com"})
	assert.Nil(t, req.BirthDate, "unparseable birth date is dropped, not fatal")

	req = rowToRequest([]string{"S-003", "Andi", "male", "", "", "", "andi@example.com"})
	assert.Nil(t, req.BirthDate)
}
