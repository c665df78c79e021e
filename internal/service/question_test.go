package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/askhub/askhub-server/internal/apierrors"
	"github.com/askhub/askhub-server/internal/mocks"
	"github.com/askhub/askhub-server/internal/model"
	"github.com/askhub/askhub-server/internal/testutil"
)

func newQuestionFixture() (*mocks.QuestionStore, *mocks.AnswerStore, *mocks.TagStore, *Question) {
	questionStore := &mocks.QuestionStore{}
	answerStore := &mocks.AnswerStore{}
	tagStore := &mocks.TagStore{}
	s := NewQuestion(questionStore, answerStore, tagStore, testutil.MakeNoopLogger())
	return questionStore, answerStore, tagStore, s
}

func TestQuestion_CreateQuestion_Success(t *testing.T) {
	ctx := context.Background()
	questionStore, _, _, s := newQuestionFixture()

	userID := uuid.New()
	tagIDs := []uuid.UUID{uuid.New(), uuid.New()}

	questionStore.On("Create", mock.Anything, mock.MatchedBy(func(q model.Question) bool {
		return q.AskedByID == userID && q.Title == "How?" && q.Body == "Like this?"
	}), tagIDs).Return(model.Question{ID: uuid.New(), AskedByID: userID, Title: "How?"}, nil)

	question, err := s.CreateQuestion(ctx, userID, model.CreateQuestionParams{
		Title:  "How?",
		Body:   "Like this?",
		TagIDs: tagIDs,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, question.AskedByID)
}

func TestQuestion_CreateQuestion_NotAuthenticated(t *testing.T) {
	ctx := context.Background()
	_, _, _, s := newQuestionFixture()

	_, err := s.CreateQuestion(ctx, uuid.Nil, model.CreateQuestionParams{Title: "How?"})
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.CodeNotAuthenticated, apiErr.Code)
}

func TestQuestion_CreateQuestionView_FirstView(t *testing.T) {
	ctx := context.Background()
	questionStore, _, _, s := newQuestionFixture()

	userID := uuid.New()
	questionID := uuid.New()

	questionStore.On("HasView", mock.Anything, userID, questionID).Return(false, nil)
	questionStore.On("CreateView", mock.Anything, mock.MatchedBy(func(v model.QuestionView) bool {
		return v.QuestionID == questionID && v.ViewedByID == userID
	})).Return(nil)

	ok, err := s.CreateQuestionView(ctx, userID, questionID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestQuestion_CreateQuestionView_AlreadySeen(t *testing.T) {
	ctx := context.Background()
	questionStore, _, _, s := newQuestionFixture()

	userID := uuid.New()
	questionID := uuid.New()

	questionStore.On("HasView", mock.Anything, userID, questionID).Return(true, nil)

	ok, err := s.CreateQuestionView(ctx, userID, questionID)
	require.NoError(t, err)
	assert.True(t, ok)

	questionStore.AssertNotCalled(t, "CreateView", mock.Anything, mock.Anything)
}

func TestQuestion_CreateQuestionView_DuplicateRaceTolerated(t *testing.T) {
	ctx := context.Background()
	questionStore, _, _, s := newQuestionFixture()

	userID := uuid.New()
	questionID := uuid.New()

	questionStore.On("HasView", mock.Anything, userID, questionID).Return(false, nil)
	questionStore.On("CreateView", mock.Anything, mock.Anything).Return(model.ErrDuplicate)

	ok, err := s.CreateQuestionView(ctx, userID, questionID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestQuestion_CreateTag_NormalizesName(t *testing.T) {
	ctx := context.Background()
	_, _, tagStore, s := newQuestionFixture()

	tagStore.On("GetByName", mock.Anything, "golang").Return(model.Tag{}, model.ErrNotFound)
	tagStore.On("Create", mock.Anything, mock.MatchedBy(func(tag model.Tag) bool {
		return tag.Name == "golang"
	})).Return(model.Tag{ID: uuid.New(), Name: "golang"}, nil)

	tag, err := s.CreateTag(ctx, "  GoLang  ")
	require.NoError(t, err)
	assert.Equal(t, "golang", tag.Name)
}

func TestQuestion_CreateTag_TooShort(t *testing.T) {
	ctx := context.Background()
	_, _, tagStore, s := newQuestionFixture()

	_, err := s.CreateTag(ctx, " x ")
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.CodeInvalidInput, apiErr.Code)

	tagStore.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
}

func TestQuestion_CreateTag_ReturnsExisting(t *testing.T) {
	ctx := context.Background()
	_, _, tagStore, s := newQuestionFixture()

	existing := model.Tag{ID: uuid.New(), Name: "golang"}
	tagStore.On("GetByName", mock.Anything, "golang").Return(existing, nil)

	tag, err := s.CreateTag(ctx, "golang")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, tag.ID)

	tagStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestQuestion_CreateTag_LostCreateRace(t *testing.T) {
	ctx := context.Background()
	_, _, tagStore, s := newQuestionFixture()

	winner := model.Tag{ID: uuid.New(), Name: "golang"}
	tagStore.On("GetByName", mock.Anything, "golang").
		Return(model.Tag{}, model.ErrNotFound).Once()
	tagStore.On("Create", mock.Anything, mock.Anything).Return(model.Tag{}, model.ErrDuplicate)
	tagStore.On("GetByName", mock.Anything, "golang").Return(winner, nil)

	tag, err := s.CreateTag(ctx, "golang")
	require.NoError(t, err)
	assert.Equal(t, winner.ID, tag.ID)
}

func TestQuestion_CreateAnswer_Success(t *testing.T) {
	ctx := context.Background()
	_, answerStore, _, s := newQuestionFixture()

	userID := uuid.New()
	questionID := uuid.New()

	answerStore.On("Create", mock.Anything, mock.MatchedBy(func(a model.Answer) bool {
		return a.QuestionID == questionID && a.AnsweredByID == userID && a.Body == "Use context."
	})).Return(model.Answer{ID: uuid.New(), QuestionID: questionID, AnsweredByID: userID}, nil)

	answer, err := s.CreateAnswer(ctx, userID, model.CreateAnswerParams{
		QuestionID: questionID,
		Body:       "Use context.",
	})
	require.NoError(t, err)
	assert.Equal(t, questionID, answer.QuestionID)
}

func TestQuestion_CreateAnswer_NotAuthenticated(t *testing.T) {
	ctx := context.Background()
	_, answerStore, _, s := newQuestionFixture()

	_, err := s.CreateAnswer(ctx, uuid.Nil, model.CreateAnswerParams{QuestionID: uuid.New()})
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.CodeNotAuthenticated, apiErr.Code)

	answerStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
