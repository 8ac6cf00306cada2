package locrank_test

import (
	"testing"

	"github.com/fwojciec/locrank"
	"github.com/stretchr/testify/assert"
)

func TestFormatReport(t *testing.T) {
	t.Parallel()

	t.Run("formats header, elements and locators", func(t *testing.T) {
		t.Parallel()

		r := locrank.NewReport("input")
		r.Put("input_q", []locrank.Locator{
			{Selector: "[name='q']", Rank: 3},
			{Selector: "//input[@name='q']", Rank: 6},
		})
		r.Put("input_2", []locrank.Locator{})

		result := locrank.FormatReport(r)

		expected := "--- Locators for input elements ---\n" +
			"Element: input_q\n" +
			"Locator: [name='q'], Rank: 3\n" +
			"Locator: //input[@name='q'], Rank: 6\n" +
			"\n" +
			"Element: input_2\n" +
			"\n"
		assert.Equal(t, expected, result)
	})

	t.Run("formats empty report as header only", func(t *testing.T) {
		t.Parallel()

		result := locrank.FormatReport(locrank.NewReport("select"))

		assert.Equal(t, "--- Locators for select elements ---\n", result)
	})
}

func TestFormatReports(t *testing.T) {
	t.Parallel()

	t.Run("concatenates reports in order", func(t *testing.T) {
		t.Parallel()

		a := locrank.NewReport("a")
		a.Put("a_1", []locrank.Locator{{Selector: "//a[@href='/']", Rank: 9}})
		button := locrank.NewReport("button")

		result := locrank.FormatReports([]*locrank.Report{a, button})

		expected := "--- Locators for a elements ---\n" +
			"Element: a_1\n" +
			"Locator: //a[@href='/'], Rank: 9\n" +
			"\n" +
			"--- Locators for button elements ---\n"
		assert.Equal(t, expected, result)
	})

	t.Run("returns empty string for no reports", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, locrank.FormatReports(nil))
	})
}
