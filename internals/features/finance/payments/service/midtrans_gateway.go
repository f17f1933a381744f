// file: internals/features/finance/payments/service/midtrans_gateway.go
package service

import (
	"math"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// PaymentGateway membuat payment intent di penyedia pembayaran eksternal.
// Controller menerima interface ini supaya gampang di-fake di test.
type PaymentGateway interface {
	// CreatePaymentIntent menerima amount dalam satuan mayor dan
	// mengembalikan client secret / token untuk sisi frontend.
	CreatePaymentIntent(amount float64) (string, error)
}

type midtransGateway struct {
	client snap.Client
}

// NewMidtransGateway: serverKey kosong berarti gateway tidak dikonfigurasi,
// caller harus mengoper nil ke controller untuk kasus itu.
func NewMidtransGateway(serverKey string, useProd bool) PaymentGateway {
	env := midtrans.Sandbox
	if useProd {
		env = midtrans.Production
	}
	g := &midtransGateway{}
	g.client.New(serverKey, env)
	return g
}

// grossAmount mengubah satuan mayor ke minor unit (sen).
func grossAmount(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (g *midtransGateway) CreatePaymentIntent(amount float64) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  "pay-" + uuid.NewString(),
			GrossAmt: grossAmount(amount),
		},
	}
	res, err := g.client.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return res.Token, nil
}
