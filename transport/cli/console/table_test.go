package console_test

import (
	"bytes"
	"testing"

	gRepo "hotel/shared/repository"
	"hotel/transport/cli/console"

	"github.com/stretchr/testify/assert"
)

func TestPrintTable(t *testing.T) {
	res := gRepo.Result{
		Columns: []string{"roomnumber", "price", "availability"},
		Rows:    [][]string{{"1", "80", "Available"}, {"12", "105", "Booked"}},
	}

	var out bytes.Buffer

	count := console.PrintTable(&out, res)

	assert.Equal(t, 2, count)
	assert.Equal(t, ""+
		"-------------------------------------\n"+
		"| roomnumber | price | availability |\n"+
		"-------------------------------------\n"+
		"| 1          | 80    | Available    |\n"+
		"| 12         | 105   | Booked       |\n"+
		"-------------------------------------\n",
		out.String())
}

func TestPrintTable_Empty(t *testing.T) {
	var out bytes.Buffer

	count := console.PrintTableWithCount(&out, gRepo.Result{Columns: []string{"price"}})

	assert.Equal(t, 0, count)
	assert.Equal(t, "Total row(s): 0\n", out.String())
}

func TestPrintTable_MultibyteValues(t *testing.T) {
	res := gRepo.Result{
		Columns: []string{"name", "bookings"},
		Rows:    [][]string{{"José Müller", "3"}, {"Ann", "12"}},
	}

	var out bytes.Buffer

	console.PrintTable(&out, res)

	assert.Equal(t, ""+
		"--------------------------\n"+
		"| name        | bookings |\n"+
		"--------------------------\n"+
		"| José Müller | 3        |\n"+
		"| Ann         | 12       |\n"+
		"--------------------------\n",
		out.String())
}
