package storefront

import (
	"net/url"
	"strings"

	"payler_gateway/internal/config"
	"payler_gateway/internal/domain/entities"
	"payler_gateway/internal/usecase/interfaces"
)

// OrderURLs builds storefront URLs under a site root, following the
// storefront's permalink layout:
//
//	received:     {site}/checkout/order-received/{id}/?key={order_key}
//	cancel:       {site}/cart/?cancel_order=true&order={order_key}&order_id={id}
//	checkout:     {site}/checkout/
//	notification: {site}/wc-api/payler
type OrderURLs struct {
	site string
}

var _ interfaces.IOrderURLs = (*OrderURLs)(nil)

func NewOrderURLs(siteURL string) *OrderURLs {
	return &OrderURLs{site: strings.TrimRight(siteURL, "/")}
}

func (u *OrderURLs) ReceivedURL(order entities.Order) string {
	q := url.Values{}
	q.Set("key", order.OrderKey)
	return u.site + "/checkout/order-received/" + url.PathEscape(order.ID) + "/?" + q.Encode()
}

func (u *OrderURLs) CancelURL(order entities.Order) string {
	return u.site + "/cart/?cancel_order=true&order=" + url.QueryEscape(order.OrderKey) + "&order_id=" + url.QueryEscape(order.ID)
}

func (u *OrderURLs) CheckoutURL() string {
	return u.site + "/checkout/"
}

func (u *OrderURLs) NotificationURL() string {
	return u.site + "/wc-api/" + config.GatewayID
}
