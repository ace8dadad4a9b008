// Package cognito adapts AWS Cognito user pools to the identity provider contract.
package cognito

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"log/slog"

	"usersvc/config"
	deliverycontext "usersvc/internal/delivery/context"
	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const subAttribute = "sub"

// cognitoAPI is the subset of the Cognito client the adapter calls.
type cognitoAPI interface {
	AdminCreateUser(ctx context.Context, params *cip.AdminCreateUserInput, optFns ...func(*cip.Options)) (*cip.AdminCreateUserOutput, error)
	AdminSetUserPassword(ctx context.Context, params *cip.AdminSetUserPasswordInput, optFns ...func(*cip.Options)) (*cip.AdminSetUserPasswordOutput, error)
	AdminAddUserToGroup(ctx context.Context, params *cip.AdminAddUserToGroupInput, optFns ...func(*cip.Options)) (*cip.AdminAddUserToGroupOutput, error)
	AdminDisableUser(ctx context.Context, params *cip.AdminDisableUserInput, optFns ...func(*cip.Options)) (*cip.AdminDisableUserOutput, error)
	AdminEnableUser(ctx context.Context, params *cip.AdminEnableUserInput, optFns ...func(*cip.Options)) (*cip.AdminEnableUserOutput, error)
	AdminInitiateAuth(ctx context.Context, params *cip.AdminInitiateAuthInput, optFns ...func(*cip.Options)) (*cip.AdminInitiateAuthOutput, error)
	ForgotPassword(ctx context.Context, params *cip.ForgotPasswordInput, optFns ...func(*cip.Options)) (*cip.ForgotPasswordOutput, error)
	ConfirmForgotPassword(ctx context.Context, params *cip.ConfirmForgotPasswordInput, optFns ...func(*cip.Options)) (*cip.ConfirmForgotPasswordOutput, error)
}

// Swapped in tests.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig
	newCognitoClient     = func(cfg aws.Config, optFns ...func(*cip.Options)) cognitoAPI {
		return cip.NewFromConfig(cfg, optFns...)
	}
)

type identityProvider struct {
	client       cognitoAPI
	userPoolID   string
	clientID     string
	clientSecret string
	logger       *slog.Logger
}

// Params holds dependencies for the Cognito identity provider, injected by Fx.
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewIdentityProvider builds the Cognito adapter. Missing pool settings are a
// configuration error and abort startup.
func NewIdentityProvider(params Params) (service.IdentityProvider, error) {
	cfg := params.Config.Cognito
	if cfg.Region == "" || cfg.UserPoolID == "" || cfg.ClientID == "" {
		return nil, domainerrors.ErrIdentityProviderMisconfigured.
			WithDetails("cognito.region, cognito.userPoolId and cognito.clientId are required")
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(params.Ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS configuration")
	}

	client := newCognitoClient(awsCfg, func(o *cip.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	params.Logger.Info("Using Cognito identity provider",
		slog.String("region", cfg.Region),
		slog.String("user_pool_id", cfg.UserPoolID),
	)

	return newIdentityProvider(client, cfg, params.Logger), nil
}

func newIdentityProvider(client cognitoAPI, cfg config.CognitoConfig, logger *slog.Logger) *identityProvider {
	return &identityProvider{
		client:       client,
		userPoolID:   cfg.UserPoolID,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		logger:       logger,
	}
}

func (p *identityProvider) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, p.logger)
}

// Register creates the pool user with a permanent password, adds it to the
// role's group when the role is not the default, and disables it until activation.
func (p *identityProvider) Register(ctx context.Context, email entity.Email, password, fullName string, role entity.Role) (string, error) {
	username := email.String()

	created, err := p.client.AdminCreateUser(ctx, &cip.AdminCreateUserInput{
		UserPoolId:    aws.String(p.userPoolID),
		Username:      aws.String(username),
		MessageAction: types.MessageActionTypeSuppress,
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(username)},
			{Name: aws.String("email_verified"), Value: aws.String("true")},
			{Name: aws.String("name"), Value: aws.String(fullName)},
		},
	})
	if err != nil {
		var exists *types.UsernameExistsException
		if errors.As(err, &exists) {
			return "", domainerrors.ErrUserAlreadyExists.WrapMessage("cognito user already exists")
		}

		return "", errors.Wrap(err, "cognito AdminCreateUser")
	}

	if _, err := p.client.AdminSetUserPassword(ctx, &cip.AdminSetUserPasswordInput{
		UserPoolId: aws.String(p.userPoolID),
		Username:   aws.String(username),
		Password:   aws.String(password),
		Permanent:  true,
	}); err != nil {
		var invalid *types.InvalidPasswordException
		if errors.As(err, &invalid) {
			return "", domainerrors.ErrWeakPassword.WithDetails(aws.ToString(invalid.Message))
		}

		return "", errors.Wrap(err, "cognito AdminSetUserPassword")
	}

	if role != "" && role != entity.RoleUser {
		if _, err := p.client.AdminAddUserToGroup(ctx, &cip.AdminAddUserToGroupInput{
			UserPoolId: aws.String(p.userPoolID),
			Username:   aws.String(username),
			GroupName:  aws.String(role.String()),
		}); err != nil {
			return "", errors.Wrap(err, "cognito AdminAddUserToGroup")
		}
	}

	if err := p.DisableUser(ctx, email); err != nil {
		return "", err
	}

	return subjectOf(created), nil
}

// Authenticate runs ADMIN_NO_SRP_AUTH. Rejections and pending challenges yield (nil, nil).
func (p *identityProvider) Authenticate(ctx context.Context, email entity.Email, password string) (*entity.AuthResult, error) {
	params := map[string]string{
		"USERNAME": email.String(),
		"PASSWORD": password,
	}
	if hash := p.secretHash(email.String()); hash != "" {
		params["SECRET_HASH"] = hash
	}

	out, err := p.client.AdminInitiateAuth(ctx, &cip.AdminInitiateAuthInput{
		AuthFlow:       types.AuthFlowTypeAdminNoSrpAuth,
		UserPoolId:     aws.String(p.userPoolID),
		ClientId:       aws.String(p.clientID),
		AuthParameters: params,
	})
	if err != nil {
		if isRejection(err) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "cognito AdminInitiateAuth")
	}

	if out.AuthenticationResult == nil {
		p.log(ctx).Info("Cognito authentication requires a challenge",
			slog.String("challenge", string(out.ChallengeName)),
		)

		return nil, nil
	}

	result := out.AuthenticationResult

	return &entity.AuthResult{
		AccessToken:  aws.ToString(result.AccessToken),
		IDToken:      aws.ToString(result.IdToken),
		RefreshToken: aws.ToString(result.RefreshToken),
		ExpiresIn:    result.ExpiresIn,
	}, nil
}

// InitiateForgotPassword lets Cognito email a confirmation code.
func (p *identityProvider) InitiateForgotPassword(ctx context.Context, email entity.Email) error {
	_, err := p.client.ForgotPassword(ctx, &cip.ForgotPasswordInput{
		ClientId:   aws.String(p.clientID),
		Username:   aws.String(email.String()),
		SecretHash: p.secretHashPtr(email.String()),
	})
	if err != nil {
		var notFound *types.UserNotFoundException
		if errors.As(err, &notFound) {
			return nil
		}

		return errors.Wrap(err, "cognito ForgotPassword")
	}

	return nil
}

func (p *identityProvider) ConfirmForgotPassword(ctx context.Context, email entity.Email, code, newPassword string) (bool, error) {
	_, err := p.client.ConfirmForgotPassword(ctx, &cip.ConfirmForgotPasswordInput{
		ClientId:         aws.String(p.clientID),
		Username:         aws.String(email.String()),
		ConfirmationCode: aws.String(code),
		Password:         aws.String(newPassword),
		SecretHash:       p.secretHashPtr(email.String()),
	})
	if err != nil {
		var (
			mismatch *types.CodeMismatchException
			expired  *types.ExpiredCodeException
			notFound *types.UserNotFoundException
			invalid  *types.InvalidPasswordException
		)
		if errors.As(err, &mismatch) || errors.As(err, &expired) || errors.As(err, &notFound) || errors.As(err, &invalid) {
			return false, nil
		}

		return false, errors.Wrap(err, "cognito ConfirmForgotPassword")
	}

	return true, nil
}

func (p *identityProvider) EnableUser(ctx context.Context, email entity.Email) error {
	_, err := p.client.AdminEnableUser(ctx, &cip.AdminEnableUserInput{
		UserPoolId: aws.String(p.userPoolID),
		Username:   aws.String(email.String()),
	})

	return errors.Wrap(err, "cognito AdminEnableUser")
}

func (p *identityProvider) DisableUser(ctx context.Context, email entity.Email) error {
	_, err := p.client.AdminDisableUser(ctx, &cip.AdminDisableUserInput{
		UserPoolId: aws.String(p.userPoolID),
		Username:   aws.String(email.String()),
	})

	return errors.Wrap(err, "cognito AdminDisableUser")
}

// secretHash is Base64(HMAC-SHA256(clientSecret, username+clientID)), required
// by app clients that have a secret.
func (p *identityProvider) secretHash(username string) string {
	if p.clientSecret == "" {
		return ""
	}

	mac := hmac.New(sha256.New, []byte(p.clientSecret))
	mac.Write([]byte(username + p.clientID))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func (p *identityProvider) secretHashPtr(username string) *string {
	if hash := p.secretHash(username); hash != "" {
		return aws.String(hash)
	}

	return nil
}

func subjectOf(out *cip.AdminCreateUserOutput) string {
	if out == nil || out.User == nil {
		return ""
	}

	for _, attr := range out.User.Attributes {
		if aws.ToString(attr.Name) == subAttribute {
			return aws.ToString(attr.Value)
		}
	}

	return ""
}

func isRejection(err error) bool {
	var (
		notAuthorized *types.NotAuthorizedException
		notFound      *types.UserNotFoundException
		notConfirmed  *types.UserNotConfirmedException
		resetRequired *types.PasswordResetRequiredException
	)

	return errors.As(err, &notAuthorized) ||
		errors.As(err, &notFound) ||
		errors.As(err, &notConfirmed) ||
		errors.As(err, &resetRequired)
}
