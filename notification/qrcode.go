package notification

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	htmltemplate "html/template"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/skip2/go-qrcode"
)

const qrCodeSize = 300

// QRUploader stores a rendered QR code and returns a public URL for it.
type QRUploader interface {
	UploadQRCode(ctx context.Context, clientReference string, png []byte) (string, error)
}

type S3PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var _ QRUploader = &S3QRUploader{}

type S3QRUploader struct {
	client S3PutObjectAPI
	bucket string
	region string
}

func NewS3QRUploader(client S3PutObjectAPI, bucket string, region string) *S3QRUploader {
	return &S3QRUploader{
		client: client,
		bucket: bucket,
		region: region,
	}
}

func (u *S3QRUploader) UploadQRCode(ctx context.Context, clientReference string, png []byte) (string, error) {
	key := fmt.Sprintf("qr-codes/%s.png", clientReference)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(u.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(png),
		ContentType:  aws.String("image/png"),
		CacheControl: aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %q to bucket %q: %w", key, u.bucket, err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}

// qrCode renders the entry QR code for content. It prefers a hosted image and
// falls back to an inline data URI. An empty URL means no QR code could be made;
// the email is still sent.
func (d *Dispatcher) qrCode(ctx context.Context, clientReference string, content string) htmltemplate.URL {
	png, err := qrcode.Encode(content, qrcode.Medium, qrCodeSize)
	if err != nil {
		d.logger.WarnContext(ctx, "Failed to render QR code",
			slog.String("client-reference", clientReference),
			slog.String("error", err.Error()),
		)
		return ""
	}

	if d.qr != nil {
		hosted, err := d.qr.UploadQRCode(ctx, clientReference, png)
		if err == nil {
			return htmltemplate.URL(hosted)
		}
		d.logger.WarnContext(ctx, "Failed to upload QR code, inlining it",
			slog.String("client-reference", clientReference),
			slog.String("error", err.Error()),
		)
	}

	return htmltemplate.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
}
