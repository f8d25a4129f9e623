package chargereseller

import (
	"fmt"
	"net/url"
	"strconv"
)

// ChargeParams carries the per-request fields of a reseller call.
type ChargeParams struct {
	Amount    int
	Cellphone string
	Operator  string
}

// buildParams assembles the flat query parameter set the reseller expects.
// The data[...] keys and constant values are fixed by the reseller protocol.
// Every call gets a fresh nonce; nothing here survives the request.
func (c *Client) buildParams(p ChargeParams, pincode bool, nonce int64) url.Values {
	params := url.Values{}

	// Base subset, constant across all requests.
	params.Set("data[webserviceId]", c.config.WebServiceID)
	params.Set("data[redirectUrl]", c.config.RedirectURL)
	params.Set("data[count]", "1")
	params.Set("data[email]", "")
	params.Set("data[packageId]", "")
	params.Set("data[billId]", "")
	params.Set("data[paymentId]", "")
	params.Set("data[issuer]", "")
	params.Set("data[paymentDetails]", "true")
	params.Set("data[redirectToPage]", "true")
	params.Set("data[scriptVersion]", "Script-fluent-1.7")
	params.Set("data[firstOutputType]", "json")
	params.Set("data[isTarabord]", "false")
	params.Set("data[secondOutputType]", "get")
	params.Set("data[ChargeKind]", "")
	params.Set("data[nonce]", strconv.FormatInt(nonce, 10))

	// Per-request subset.
	params.Set("data[amount]", strconv.Itoa(p.Amount))
	params.Set("data[cellphone]", p.Cellphone)
	params.Set("data[type]", p.Operator)

	if pincode {
		params.Set("data[productId]", fmt.Sprintf("CC-%s-%d", p.Operator, p.Amount))
	}

	return params
}
