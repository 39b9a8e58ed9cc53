package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
)

type SSMGetParameterAPI interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// LoadSecrets fills any unset secret from SSM Parameter Store. Values already
// present in the environment win.
func (c *Config) LoadSecrets(ctx context.Context, client SSMGetParameterAPI) error {
	secrets := []struct {
		name   string
		target *string
	}{
		{name: "hubtel-api-key", target: &c.HubtelAPIKey},
		{name: "jwt-secret", target: &c.JWTSecret},
		{name: "gmail-credentials", target: &c.GmailCredentialsJSON},
	}

	for _, s := range secrets {
		if *s.target != "" {
			continue
		}

		v, err := getParameter(ctx, client, c.SSMPrefix+s.name)
		if err != nil {
			return err
		}
		*s.target = v
	}

	return nil
}

func getParameter(ctx context.Context, client SSMGetParameterAPI, name string) (string, error) {
	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		var notFound *types.ParameterNotFound
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get parameter %q: %w", name, err)
	}

	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", nil
	}
	return *out.Parameter.Value, nil
}
