package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMeal() *Meal {
	now := time.Now()
	return &Meal{
		Title:           "Обед",
		MealType:        MealTypeLunch,
		OriginalPrice:   10.0,
		DiscountedPrice: 4.0,
		StartTime:       now,
		EndTime:         now.Add(2 * time.Hour),
	}
}

func TestMealValidate_Success(t *testing.T) {
	require.NoError(t, validMeal().Validate())
}

func TestMealValidate_TitleRequired(t *testing.T) {
	m := validMeal()
	m.Title = ""
	assert.Error(t, m.Validate())
}

func TestMealValidate_UnknownMealType(t *testing.T) {
	m := validMeal()
	m.MealType = "brunch"
	assert.Error(t, m.Validate())
}

func TestMealValidate_EndBeforeStart(t *testing.T) {
	m := validMeal()
	m.EndTime = m.StartTime.Add(-time.Minute)
	assert.Error(t, m.Validate())
}

func TestMealValidate_ZeroLengthWindow(t *testing.T) {
	m := validMeal()
	m.EndTime = m.StartTime
	assert.Error(t, m.Validate())
}

func TestMealValidate_FreeMealIgnoresPrices(t *testing.T) {
	m := validMeal()
	m.IsFree = true
	m.OriginalPrice = 10.0
	m.DiscountedPrice = 99.0 // даже противоречивые цены не мешают бесплатному предложению

	require.NoError(t, m.Validate())
	assert.Zero(t, m.OriginalPrice)
	assert.Zero(t, m.DiscountedPrice)
}

func TestMealValidate_DiscountAboveOriginal(t *testing.T) {
	m := validMeal()
	m.DiscountedPrice = m.OriginalPrice + 1
	assert.Error(t, m.Validate())
}

func TestMealValidate_NegativeQuantity(t *testing.T) {
	m := validMeal()
	q := -1
	m.QuantityAvailable = &q
	assert.Error(t, m.Validate())
}

func TestMealIsVisibleAt(t *testing.T) {
	now := time.Now()
	m := validMeal()
	m.IsActive = true
	m.StartTime = now.Add(-time.Hour)
	m.EndTime = now.Add(time.Hour)

	assert.True(t, m.IsVisibleAt(now))
	// Начало окна включительно, конец - нет
	assert.True(t, m.IsVisibleAt(m.StartTime))
	assert.False(t, m.IsVisibleAt(m.EndTime))
	// Деактивированное предложение невидимо даже внутри окна
	m.IsActive = false
	assert.False(t, m.IsVisibleAt(now))
}
