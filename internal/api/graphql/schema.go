package graphql

import (
	"fmt"

	gql "github.com/graphql-go/graphql"

	"github.com/askhub/askhub-server/internal/model"
)

// NewSchema builds the GraphQL schema around the resolver.
func NewSchema(r *Resolver) (gql.Schema, error) {
	userType := gql.NewObject(gql.ObjectConfig{
		Name: "User",
		Fields: gql.Fields{
			"id":          &gql.Field{Type: gql.NewNonNull(gql.ID)},
			"email":       &gql.Field{Type: gql.NewNonNull(gql.String)},
			"name":        &gql.Field{Type: gql.String},
			"permissions": &gql.Field{Type: gql.NewList(gql.String)},
		},
	})

	tagType := gql.NewObject(gql.ObjectConfig{
		Name: "Tag",
		Fields: gql.Fields{
			"id":   &gql.Field{Type: gql.NewNonNull(gql.ID)},
			"name": &gql.Field{Type: gql.NewNonNull(gql.String)},
		},
	})

	questionType := gql.NewObject(gql.ObjectConfig{
		Name: "Question",
		Fields: gql.Fields{
			"id":    &gql.Field{Type: gql.NewNonNull(gql.ID)},
			"title": &gql.Field{Type: gql.NewNonNull(gql.String)},
			"body":  &gql.Field{Type: gql.String},
			"tags":  &gql.Field{Type: gql.NewList(tagType)},
			"askedBy": &gql.Field{
				Type: gql.NewNonNull(gql.ID),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					question, ok := p.Source.(model.Question)
					if !ok {
						return nil, fmt.Errorf("unexpected source type %T", p.Source)
					}
					return question.AskedByID, nil
				},
			},
			"createdAt": &gql.Field{Type: gql.DateTime},
		},
	})

	answerType := gql.NewObject(gql.ObjectConfig{
		Name: "Answer",
		Fields: gql.Fields{
			"id":   &gql.Field{Type: gql.NewNonNull(gql.ID)},
			"body": &gql.Field{Type: gql.NewNonNull(gql.String)},
			"answeredBy": &gql.Field{
				Type: gql.NewNonNull(gql.ID),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					answer, ok := p.Source.(model.Answer)
					if !ok {
						return nil, fmt.Errorf("unexpected source type %T", p.Source)
					}
					return answer.AnsweredByID, nil
				},
			},
			"answeredTo": &gql.Field{
				Type: gql.NewNonNull(gql.ID),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					answer, ok := p.Source.(model.Answer)
					if !ok {
						return nil, fmt.Errorf("unexpected source type %T", p.Source)
					}
					return answer.QuestionID, nil
				},
			},
			"createdAt": &gql.Field{Type: gql.DateTime},
		},
	})

	successMessageType := gql.NewObject(gql.ObjectConfig{
		Name: "SuccessMessage",
		Fields: gql.Fields{
			"message": &gql.Field{Type: gql.NewNonNull(gql.String)},
		},
	})

	queryType := gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			"me": &gql.Field{
				Type:    userType,
				Resolve: r.me,
			},
		},
	})

	mutationType := gql.NewObject(gql.ObjectConfig{
		Name: "Mutation",
		Fields: gql.Fields{
			"signup": &gql.Field{
				Type: gql.NewNonNull(userType),
				Args: gql.FieldConfigArgument{
					"email":    &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
					"password": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
					"name":     &gql.ArgumentConfig{Type: gql.String},
				},
				Resolve: r.signup,
			},
			"signin": &gql.Field{
				Type: gql.NewNonNull(userType),
				Args: gql.FieldConfigArgument{
					"email":    &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
					"password": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
				},
				Resolve: r.signin,
			},
			"signout": &gql.Field{
				Type:    gql.NewNonNull(successMessageType),
				Resolve: r.signout,
			},
			"requestReset": &gql.Field{
				Type: gql.NewNonNull(successMessageType),
				Args: gql.FieldConfigArgument{
					"email": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
				},
				Resolve: r.requestReset,
			},
			"resetPassword": &gql.Field{
				Type: gql.NewNonNull(userType),
				Args: gql.FieldConfigArgument{
					"resetToken":      &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
					"password":        &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
					"confirmPassword": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
				},
				Resolve: r.resetPassword,
			},
			"updateUser": &gql.Field{
				Type: gql.NewNonNull(userType),
				Args: gql.FieldConfigArgument{
					"name":  &gql.ArgumentConfig{Type: gql.String},
					"email": &gql.ArgumentConfig{Type: gql.String},
				},
				Resolve: r.updateUser,
			},
			"createQuestion": &gql.Field{
				Type: gql.NewNonNull(questionType),
				Args: gql.FieldConfigArgument{
					"title": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
					"body":  &gql.ArgumentConfig{Type: gql.String},
					"tags":  &gql.ArgumentConfig{Type: gql.NewList(gql.NewNonNull(gql.ID))},
				},
				Resolve: r.createQuestion,
			},
			"createQuestionView": &gql.Field{
				Type: gql.NewNonNull(gql.Boolean),
				Args: gql.FieldConfigArgument{
					"questionId": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
				},
				Resolve: r.createQuestionView,
			},
			"createTag": &gql.Field{
				Type: gql.NewNonNull(tagType),
				Args: gql.FieldConfigArgument{
					"name": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
				},
				Resolve: r.createTag,
			},
			"createAnswer": &gql.Field{
				Type: gql.NewNonNull(answerType),
				Args: gql.FieldConfigArgument{
					"questionId": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
					"body":       &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
				},
				Resolve: r.createAnswer,
			},
		},
	})

	schema, err := gql.NewSchema(gql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
	if err != nil {
		return gql.Schema{}, fmt.Errorf("failed to build schema: %w", err)
	}

	return schema, nil
}
