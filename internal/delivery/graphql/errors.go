package graphql

import (
	"health-monitor-api/pkg/apperror"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/google/uuid"
)

// resolverError is what the schema reports in errors[]. graphql-go copies Extensions
// into the error entry.
type resolverError struct {
	message string
	code    apperror.Kind
	fields  map[string]string
}

func (e *resolverError) Error() string {
	return e.message
}

func (e *resolverError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": string(e.code)}
	if len(e.fields) > 0 {
		ext["fields"] = e.fields
	}
	return ext
}

// toGraphQLError hides dependency detail. The detail was already logged by the usecase.
func toGraphQLError(err error) error {
	if err == nil {
		return nil
	}
	return &resolverError{
		message: apperror.PublicMessage(err),
		code:    apperror.KindOf(err),
		fields:  apperror.FieldsOf(err),
	}
}

func parseID(field string, id graphqlgo.ID) (uuid.UUID, error) {
	parsed, err := uuid.Parse(string(id))
	if err != nil {
		return uuid.Nil, apperror.Validation("validation failed", map[string]string{field: field + " must be a valid id"})
	}
	return parsed, nil
}

// parseOptionalID parses an optional id filter.
func parseOptionalID(field string, id *graphqlgo.ID) (*uuid.UUID, error) {
	if id == nil {
		return nil, nil
	}
	parsed, err := parseID(field, *id)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func idsToStrings(ids *[]graphqlgo.ID) []string {
	if ids == nil {
		return nil
	}
	out := make([]string, len(*ids))
	for i, id := range *ids {
		out[i] = string(id)
	}
	return out
}

func idToString(id *graphqlgo.ID) *string {
	if id == nil {
		return nil
	}
	s := string(*id)
	return &s
}

func toInt(v *int32) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}

func toInt32(v *int) *int32 {
	if v == nil {
		return nil
	}
	i := int32(*v)
	return &i
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
