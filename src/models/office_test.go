package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeOfficeNames(t *testing.T) {
	t.Run("TestUnionIsSortedAndDeduplicated", func(t *testing.T) {
		merged := MergeOfficeNames("Chennai RO", []string{"Madurai BO", "Trichy SO", "Coimbatore DO"})

		assert.Equal(t, []string{"Chennai RO", "Coimbatore DO", "Madurai BO", "Trichy SO"}, merged)
	})

	t.Run("TestCaseAndWhitespaceVariantsCollapse", func(t *testing.T) {
		merged := MergeOfficeNames("Chennai RO", []string{"chennai ro ", "Madurai BO", " MADURAI BO"})

		assert.Len(t, merged, 2)
		assert.Equal(t, []string{"Chennai RO", "Madurai BO"}, merged)
	})

	t.Run("TestBlankNamesDropped", func(t *testing.T) {
		merged := MergeOfficeNames("", []string{"  ", "Salem BO"})

		assert.Equal(t, []string{"Salem BO"}, merged)
	})
}

func TestUserOfficesAll(t *testing.T) {
	t.Run("TestNoOfficeMeansEmptySet", func(t *testing.T) {
		resolved := UserOffices{Reporting: []string{}}
		assert.Empty(t, resolved.All())
	})

	t.Run("TestOwnPlusReporting", func(t *testing.T) {
		resolved := UserOffices{
			Own:       "Chennai RO",
			Reporting: []string{"Madurai BO", "Trichy SO", "Tambaram SO"},
		}
		all := resolved.All()
		assert.Len(t, all, 4)
		assert.Contains(t, all, "Chennai RO")
	})
}

func TestNormalizeOfficeName(t *testing.T) {
	assert.Equal(t, "chennai ro", NormalizeOfficeName(" Chennai RO "))
	assert.Equal(t, NormalizeOfficeName("chennai ro "), NormalizeOfficeName("Chennai RO"))
}
