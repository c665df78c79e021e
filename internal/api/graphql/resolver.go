package graphql

import (
	"context"
	"errors"

	gql "github.com/graphql-go/graphql"

	"github.com/google/uuid"

	"github.com/askhub/askhub-server/internal/apierrors"
	"github.com/askhub/askhub-server/internal/logger"
	"github.com/askhub/askhub-server/internal/model"
)

// AuthService defines the credential and session operations.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) (model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (model.User, string, error)
	Logout() model.Ack
	RequestReset(ctx context.Context, email string) (model.Ack, error)
	ResetPassword(ctx context.Context, resetToken, newPassword, confirmPassword string) (model.User, string, error)
}

// UserService defines profile operations.
type UserService interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, params model.UpdateProfileParams) (model.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (model.User, error)
}

// QuestionService defines content creation operations.
type QuestionService interface {
	CreateQuestion(ctx context.Context, userID uuid.UUID, params model.CreateQuestionParams) (model.Question, error)
	CreateQuestionView(ctx context.Context, userID, questionID uuid.UUID) (bool, error)
	CreateTag(ctx context.Context, name string) (model.Tag, error)
	CreateAnswer(ctx context.Context, userID uuid.UUID, params model.CreateAnswerParams) (model.Answer, error)
}

var errInternal = errors.New("internal server error")

// Resolver resolves GraphQL queries and mutations.
type Resolver struct {
	auth           AuthService
	users          UserService
	questions      QuestionService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewResolver creates a Resolver.
func NewResolver(
	auth AuthService,
	users UserService,
	questions QuestionService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Resolver {
	return &Resolver{
		auth:           auth,
		users:          users,
		questions:      questions,
		contextManager: contextManager,
		logger:         logger,
	}
}

// resolveError passes API errors through to the client and hides everything
// else behind a generic message.
func (r *Resolver) resolveError(err error) error {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	r.logger.Error("GraphQL resolver: internal error", "error", err.Error())
	return errInternal
}

func (r *Resolver) signup(p gql.ResolveParams) (interface{}, error) {
	params := model.RegisterParams{
		Email:    stringArg(p, "email"),
		Password: stringArg(p, "password"),
		Name:     stringArg(p, "name"),
	}

	user, token, err := r.auth.Register(p.Context, params)
	if err != nil {
		return nil, r.resolveError(err)
	}

	setSessionCookie(p.Context, token)

	return user, nil
}

func (r *Resolver) signin(p gql.ResolveParams) (interface{}, error) {
	user, token, err := r.auth.Authenticate(p.Context, stringArg(p, "email"), stringArg(p, "password"))
	if err != nil {
		return nil, r.resolveError(err)
	}

	setSessionCookie(p.Context, token)

	return user, nil
}

func (r *Resolver) signout(p gql.ResolveParams) (interface{}, error) {
	clearSessionCookie(p.Context)
	return r.auth.Logout(), nil
}

func (r *Resolver) requestReset(p gql.ResolveParams) (interface{}, error) {
	ack, err := r.auth.RequestReset(p.Context, stringArg(p, "email"))
	if err != nil {
		return nil, r.resolveError(err)
	}

	return ack, nil
}

func (r *Resolver) resetPassword(p gql.ResolveParams) (interface{}, error) {
	user, token, err := r.auth.ResetPassword(p.Context,
		stringArg(p, "resetToken"),
		stringArg(p, "password"),
		stringArg(p, "confirmPassword"),
	)
	if err != nil {
		return nil, r.resolveError(err)
	}

	setSessionCookie(p.Context, token)

	return user, nil
}

func (r *Resolver) updateUser(p gql.ResolveParams) (interface{}, error) {
	userID, ok := r.contextManager.GetUserIDFromContext(p.Context)
	if !ok {
		return nil, apierrors.NewErrNotAuthenticated()
	}

	params := model.UpdateProfileParams{
		Name:  optionalStringArg(p, "name"),
		Email: optionalStringArg(p, "email"),
	}

	user, err := r.users.UpdateProfile(p.Context, userID, params)
	if err != nil {
		return nil, r.resolveError(err)
	}

	return user, nil
}

func (r *Resolver) me(p gql.ResolveParams) (interface{}, error) {
	userID, ok := r.contextManager.GetUserIDFromContext(p.Context)
	if !ok {
		return nil, nil
	}

	user, err := r.users.GetByID(p.Context, userID)
	if err != nil {
		return nil, r.resolveError(err)
	}

	return user, nil
}

func (r *Resolver) createQuestion(p gql.ResolveParams) (interface{}, error) {
	userID, ok := r.contextManager.GetUserIDFromContext(p.Context)
	if !ok {
		return nil, apierrors.NewErrNotAuthenticated()
	}

	tagIDs, err := uuidListArg(p, "tags")
	if err != nil {
		return nil, err
	}

	question, err := r.questions.CreateQuestion(p.Context, userID, model.CreateQuestionParams{
		Title:  stringArg(p, "title"),
		Body:   stringArg(p, "body"),
		TagIDs: tagIDs,
	})
	if err != nil {
		return nil, r.resolveError(err)
	}

	return question, nil
}

func (r *Resolver) createQuestionView(p gql.ResolveParams) (interface{}, error) {
	userID, ok := r.contextManager.GetUserIDFromContext(p.Context)
	if !ok {
		return nil, apierrors.NewErrNotAuthenticated()
	}

	questionID, err := uuidArg(p, "questionId")
	if err != nil {
		return nil, err
	}

	viewed, err := r.questions.CreateQuestionView(p.Context, userID, questionID)
	if err != nil {
		return nil, r.resolveError(err)
	}

	return viewed, nil
}

func (r *Resolver) createTag(p gql.ResolveParams) (interface{}, error) {
	tag, err := r.questions.CreateTag(p.Context, stringArg(p, "name"))
	if err != nil {
		return nil, r.resolveError(err)
	}

	return tag, nil
}

func (r *Resolver) createAnswer(p gql.ResolveParams) (interface{}, error) {
	userID, ok := r.contextManager.GetUserIDFromContext(p.Context)
	if !ok {
		return nil, apierrors.NewErrNotAuthenticated()
	}

	questionID, err := uuidArg(p, "questionId")
	if err != nil {
		return nil, err
	}

	answer, err := r.questions.CreateAnswer(p.Context, userID, model.CreateAnswerParams{
		QuestionID: questionID,
		Body:       stringArg(p, "body"),
	})
	if err != nil {
		return nil, r.resolveError(err)
	}

	return answer, nil
}

func stringArg(p gql.ResolveParams, name string) string {
	v, _ := p.Args[name].(string)
	return v
}

func optionalStringArg(p gql.ResolveParams, name string) *string {
	v, ok := p.Args[name].(string)
	if !ok {
		return nil
	}
	return &v
}

func uuidArg(p gql.ResolveParams, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(stringArg(p, name))
	if err != nil {
		return uuid.Nil, apierrors.NewErrInvalidInput("invalid id: " + stringArg(p, name))
	}
	return id, nil
}

func uuidListArg(p gql.ResolveParams, name string) ([]uuid.UUID, error) {
	raw, ok := p.Args[name].([]interface{})
	if !ok {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(raw))
	for _, v := range raw {
		s, _ := v.(string)
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, apierrors.NewErrInvalidInput("invalid id: " + s)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
