package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-manage/internal/domain"
)

func TestValidateQuantity_Positiva_DevuelveValorSinCambios(t *testing.T) {
	got, err := domain.ValidateQuantity(5)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestValidateQuantity_Cero_EsAceptado(t *testing.T) {
	got, err := domain.ValidateQuantity(0)
	require.NoError(t, err, "cero es una cantidad válida (>= 0)")
	assert.Equal(t, 0, got)
}

func TestValidateQuantity_Negativa_RetornaError(t *testing.T) {
	_, err := domain.ValidateQuantity(-1)
	require.Error(t, err)
	assert.Equal(t, domain.MsgQuantityInvalid, err.Error())
}

func TestValidatePrice_Positivo_DevuelveValorSinCambios(t *testing.T) {
	price := decimal.NewFromFloat(9.99)
	got, err := domain.ValidatePrice(price)
	require.NoError(t, err)
	assert.True(t, got.Equal(price))
}

func TestValidatePrice_Cero_EsAceptado(t *testing.T) {
	_, err := domain.ValidatePrice(decimal.Zero)
	require.NoError(t, err, "cero es un precio válido (>= 0)")
}

func TestValidatePrice_Negativo_RetornaError(t *testing.T) {
	_, err := domain.ValidatePrice(decimal.NewFromFloat(-0.01))
	require.Error(t, err)
	assert.Equal(t, domain.MsgPriceInvalid, err.Error())
}
