package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/solo5e/combatsim/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "weapon 'flail' not found",
			expected: "NOT_FOUND: weapon 'flail' not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "sides must be at least 1",
			expected: "INVALID_ARGUMENT: sides must be at least 1",
		},
		{
			name:     "failed precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "creature is not dying",
			expected: "FAILED_PRECONDITION: creature is not dying",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.InvalidArgument("sides must be at least 1").
		WithMeta("field", "sides").
		WithMeta("value", 0)

	s.Assert().Equal("sides", err.Meta["field"])
	s.Assert().Equal(0, err.Meta["value"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("read failed")
	wrapped := errors.Wrap(baseErr, "failed to load target")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to load target", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	base := errors.NotFound("target 'bugbear' not found")
	wrapped := errors.Wrap(base, "failed to resolve duel content")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "nothing happened"))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(errors.NotFound("gone")))
}

func (s *ErrorsTestSuite) TestCodePredicates() {
	s.Assert().True(errors.IsInvalidArgument(errors.InvalidArgument("bad")))
	s.Assert().True(errors.IsFailedPrecondition(errors.FailedPrecondition("nope")))
	s.Assert().False(errors.IsNotFound(errors.Internal("boom")))
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	err := errors.NewValidationBuilder().
		RequiredField("ResultRepo").
		InvalidField("Seed", "must fit in uint64").
		Build()

	s.Require().Error(err)
	s.Assert().Equal(errors.CodeInvalidArgument, errors.GetCode(err))
	s.Assert().Contains(err.Error(), "ResultRepo: is required")

	s.Assert().NoError(errors.NewValidationBuilder().Build())
}
