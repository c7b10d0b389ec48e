package awsconf

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// Interfaces para abstrair o SDK da AWS (Permite Mocking)
type SSMClient interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

type SecretsClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// Parameter lê um parâmetro do SSM (com decrypt) usando o client real.
func Parameter(ctx context.Context, region, path string) (string, error) {
	cfg, err := GetAWSConfig(ctx, region)
	if err != nil {
		return "", err
	}
	return GetParameter(ctx, ssm.NewFromConfig(cfg), path)
}

// GetParameter contém a lógica testável via Mock.
func GetParameter(ctx context.Context, client SSMClient, path string) (string, error) {
	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(path),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("erro no SSM GetParameter %s: %w", path, err)
	}
	if out.Parameter == nil {
		return "", fmt.Errorf("parâmetro SSM %s sem valor", path)
	}
	return aws.ToString(out.Parameter.Value), nil
}

// Secret lê um segredo do Secrets Manager usando o client real.
// Aceita "id#campo" para extrair um campo de um segredo JSON.
func Secret(ctx context.Context, region, ref string) (string, error) {
	cfg, err := GetAWSConfig(ctx, region)
	if err != nil {
		return "", err
	}
	return GetSecret(ctx, secretsmanager.NewFromConfig(cfg), ref)
}

// GetSecret contém a lógica testável via Mock.
func GetSecret(ctx context.Context, client SecretsClient, ref string) (string, error) {
	secretID, field, hasField := strings.Cut(ref, "#")

	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		return "", fmt.Errorf("erro no SecretsManager %s: %w", secretID, err)
	}

	val := aws.ToString(out.SecretString)
	if !hasField {
		return val, nil
	}

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		return "", fmt.Errorf("segredo %s não é JSON: %w", secretID, err)
	}
	v, ok := data[field]
	if !ok {
		return "", fmt.Errorf("campo %s não encontrado no segredo %s", field, secretID)
	}
	return fmt.Sprintf("%v", v), nil
}
