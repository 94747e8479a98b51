package bankqr

import (
	"fmt"

	"travel-core/internal/pkg/errs"

	qrcode "github.com/skip2/go-qrcode"
)

// Payload builds the bank-transfer QR string. Field ordering is part of
// the contract with deployed QR scanners and must stay bit-stable:
// static payee tags, bank identifier, account number, amount in minor
// units, transfer reference code.
const payloadFormat = "ST|TRAVELCORE|%s|%s|%d|%s"

const imageSize = 256

func Payload(bankID, accountNumber string, amountMinor int64, referenceCode string) string {
	return fmt.Sprintf(payloadFormat, bankID, accountNumber, amountMinor, referenceCode)
}

func Image(payload string) ([]byte, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, imageSize)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode bank transfer QR")
	}
	return png, nil
}
