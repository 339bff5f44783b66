// Package cognito provisions patient accounts in an AWS Cognito user pool.
package cognito

import (
	"CareDesk/models"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"
)

// API is the subset of the Cognito client used here.
type API interface {
	AdminCreateUser(ctx context.Context, params *cip.AdminCreateUserInput, optFns ...func(*cip.Options)) (*cip.AdminCreateUserOutput, error)
	AdminSetUserPassword(ctx context.Context, params *cip.AdminSetUserPasswordInput, optFns ...func(*cip.Options)) (*cip.AdminSetUserPasswordOutput, error)
	AdminDeleteUser(ctx context.Context, params *cip.AdminDeleteUserInput, optFns ...func(*cip.Options)) (*cip.AdminDeleteUserOutput, error)
}

type Admin struct {
	client     API
	userPoolID string
}

func NewAdmin(client API, userPoolID string) *Admin {
	return &Admin{client: client, userPoolID: userPoolID}
}

// InitAdmin builds an Admin from the default AWS configuration chain.
func InitAdmin(ctx context.Context, userPoolID string) (*Admin, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewAdmin(cip.NewFromConfig(cfg), userPoolID), nil
}

// CreateUser creates a confirmed user with a permanent password. No
// invitation email is sent.
func (a *Admin) CreateUser(ctx context.Context, req models.AccountRequest) (*models.AuthUser, error) {
	out, err := a.client.AdminCreateUser(ctx, &cip.AdminCreateUserInput{
		UserPoolId:    aws.String(a.userPoolID),
		Username:      aws.String(req.Email),
		MessageAction: types.MessageActionTypeSuppress,
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(req.Email)},
			{Name: aws.String("email_verified"), Value: aws.String("true")},
			{Name: aws.String("name"), Value: aws.String(req.Name)},
			{Name: aws.String("custom:role"), Value: aws.String(req.Role)},
		},
	})
	if err != nil {
		return nil, translate(err)
	}

	_, err = a.client.AdminSetUserPassword(ctx, &cip.AdminSetUserPasswordInput{
		UserPoolId: aws.String(a.userPoolID),
		Username:   aws.String(req.Email),
		Password:   aws.String(req.Password),
		Permanent:  true,
	})
	if err != nil {
		// a user without a usable password would block the next attempt
		_, _ = a.client.AdminDeleteUser(ctx, &cip.AdminDeleteUserInput{
			UserPoolId: aws.String(a.userPoolID),
			Username:   aws.String(req.Email),
		})
		return nil, translate(err)
	}

	user := &models.AuthUser{
		Email:    req.Email,
		Role:     req.Role,
		Metadata: models.UserMetadata{Name: req.Name, Role: req.Role},
	}
	if out.User != nil {
		user.ID = attribute(out.User.Attributes, "sub")
		if user.ID == "" {
			user.ID = aws.ToString(out.User.Username)
		}
		if out.User.UserCreateDate != nil {
			user.CreatedAt = *out.User.UserCreateDate
			user.EmailConfirmedAt = out.User.UserCreateDate
		}
	}
	return user, nil
}

func attribute(attrs []types.AttributeType, name string) string {
	for _, attr := range attrs {
		if aws.ToString(attr.Name) == name {
			return aws.ToString(attr.Value)
		}
	}
	return ""
}

func translate(err error) error {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	switch apiErr.ErrorCode() {
	case "UsernameExistsException", "AliasExistsException":
		return errors.New("a user with this email address has already been registered")
	case "InvalidPasswordException", "InvalidParameterException":
		return errors.New(apiErr.ErrorMessage())
	default:
		return fmt.Errorf("%s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage())
	}
}
