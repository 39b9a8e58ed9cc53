package hubtel

import (
	"encoding/json"
	"testing"

	"github.com/accessviewafrica/summit-registration/registration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCallback(t *testing.T) {
	t.Run("full envelope", func(t *testing.T) {
		n, err := ParseCallback([]byte(`{
			"ResponseCode": "0000",
			"Status": "Success",
			"Data": {
				"CheckoutId": "chk-1",
				"SalesInvoiceId": "inv-1",
				"ClientReference": " ref-1 ",
				"Status": "Success",
				"Amount": 1500,
				"CustomerPhoneNumber": "233244000000",
				"PaymentDetails": {"MobileMoneyNumber": "233244000000", "PaymentType": "mobilemoney", "Channel": "mtn-gh"},
				"Description": "The Mobile Money payment has been approved and processed successfully."
			}
		}`))
		require.NoError(t, err)

		assert.Equal(t, "ref-1", n.ClientReference)
		assert.Equal(t, "Success", n.ProviderStatus)
		assert.Equal(t, "inv-1", n.ProviderData.TransactionID)
		assert.Equal(t, "chk-1", n.ProviderData.CheckoutID)
		assert.Equal(t, "mobilemoney", n.ProviderData.Method)
		assert.Equal(t, "mtn-gh", n.ProviderData.Channel)
		assert.Equal(t, "233244000000", n.ProviderData.PayerPhone)
		assert.Equal(t, int64(150000), n.ProviderData.Amount.Amount())
	})

	t.Run("envelope status is used when data has none", func(t *testing.T) {
		n, err := ParseCallback([]byte(`{"Status": "Failed", "Data": {"ClientReference": "ref-1"}}`))
		require.NoError(t, err)

		assert.Equal(t, "Failed", n.ProviderStatus)
		assert.Nil(t, n.ProviderData.Amount)
	})

	t.Run("missing fields are left for the reconciler", func(t *testing.T) {
		n, err := ParseCallback([]byte(`{}`))
		require.NoError(t, err)

		assert.Empty(t, n.ClientReference)
		assert.Empty(t, n.ProviderStatus)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := ParseCallback([]byte(`{"Data":`))

		var regErr *registration.Error
		require.ErrorAs(t, err, &regErr)
		assert.Equal(t, registration.REASON_MALFORMED_CALLBACK, regErr.Reason)
		var syntaxErr *json.SyntaxError
		assert.ErrorAs(t, err, &syntaxErr)
	})
}
