package errs_test

import (
	"errors"
	"testing"

	"customers/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("name")

		assert.Equal(t, "name", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("name", cause)

		assert.Equal(t, "name", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: name (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("age", 150, 0, 120)

		assert.Equal(t, "age", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 120, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is age, min value is 0, max value is 120", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("score", -5, 0, 100, cause)

		assert.Equal(t, "score", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is score, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("nil max omits the max clause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("customer_id", 0, 1, nil)

		assert.Equal(t, 1, err.Min)
		require.Nil(t, err.Max)
		assert.Equal(t, "value is invalid: 0 is customer_id, min value is 1", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsTooShortError(t *testing.T) {
	t.Run("NewValueIsTooShortError", func(t *testing.T) {
		err := errs.NewValueIsTooShortError("name", "A", 2)

		assert.Equal(t, "name", err.ParamName)
		assert.Equal(t, "A", err.Value)
		assert.Equal(t, 2, err.MinLength)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is too short: A is name, min length is 2", err.Error())
		assert.Equal(t, errs.ErrValueIsTooShort, err.Unwrap())
	})

	t.Run("NewValueIsTooShortErrorWithCause", func(t *testing.T) {
		cause := errors.New("2 digits remain after cleaning")
		err := errs.NewValueIsTooShortErrorWithCause("phone", "12", 5, cause)

		assert.Equal(t, "phone", err.ParamName)
		assert.Equal(t, "12", err.Value)
		assert.Equal(t, 5, err.MinLength)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is too short: 12 is phone, min length is 5 (cause: 2 digits remain after cleaning)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsTooShort, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsTooShortError("name", "a\nb", 5)
		assert.Contains(t, err.Error(), "a b")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsWrongTypeError(t *testing.T) {
	t.Run("NewValueIsWrongTypeError", func(t *testing.T) {
		err := errs.NewValueIsWrongTypeError("customer_id", "integer", "string")

		assert.Equal(t, "customer_id", err.ParamName)
		assert.Equal(t, "integer", err.ExpectedType)
		assert.Equal(t, "string", err.ActualType)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is wrong type: string is customer_id, expected type is integer", err.Error())
		assert.Equal(t, errs.ErrValueIsWrongType, err.Unwrap())
	})

	t.Run("NewValueIsWrongTypeErrorWithCause", func(t *testing.T) {
		cause := errors.New("number is not an integer")
		err := errs.NewValueIsWrongTypeErrorWithCause("customer_id", "integer", "float64", cause)

		assert.Equal(t, "customer_id", err.ParamName)
		assert.Equal(t, "integer", err.ExpectedType)
		assert.Equal(t, "float64", err.ActualType)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is wrong type: float64 is customer_id, expected type is integer (cause: number is not an integer)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsWrongType, err.Unwrap())
	})
}

func TestValueHasInvalidFormatError(t *testing.T) {
	t.Run("NewValueHasInvalidFormatError", func(t *testing.T) {
		err := errs.NewValueHasInvalidFormatError("phone")

		assert.Equal(t, "phone", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value has invalid format: phone", err.Error())
		assert.Equal(t, errs.ErrValueHasInvalidFormat, err.Unwrap())
	})

	t.Run("NewValueHasInvalidFormatErrorWithCause", func(t *testing.T) {
		cause := errors.New("only digits are allowed")
		err := errs.NewValueHasInvalidFormatErrorWithCause("phone", cause)

		assert.Equal(t, "phone", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value has invalid format: phone (cause: only digits are allowed)", err.Error())
		assert.Equal(t, errs.ErrValueHasInvalidFormat, err.Unwrap())
	})
}

func TestNameIsMalformedError(t *testing.T) {
	t.Run("NewNameIsMalformedError", func(t *testing.T) {
		err := errs.NewNameIsMalformedError("contact_person")

		assert.Equal(t, "contact_person", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "name is malformed: contact_person", err.Error())
		assert.Equal(t, errs.ErrNameIsMalformed, err.Unwrap())
	})

	t.Run("NewNameIsMalformedErrorWithCause", func(t *testing.T) {
		cause := errors.New("first and last name are required")
		err := errs.NewNameIsMalformedErrorWithCause("contact_person", cause)

		assert.Equal(t, "contact_person", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "name is malformed: contact_person (cause: first and last name are required)", err.Error())
		assert.Equal(t, errs.ErrNameIsMalformed, err.Unwrap())
	})
}

func TestRequiredFieldsAreMissingError(t *testing.T) {
	t.Run("NewRequiredFieldsAreMissingError", func(t *testing.T) {
		err := errs.NewRequiredFieldsAreMissingError("phone", "contact_person")

		assert.Equal(t, []string{"phone", "contact_person"}, err.Fields)
		require.NoError(t, err.Cause)
		assert.Equal(t, "required fields are missing: phone, contact_person", err.Error())
		assert.Equal(t, errs.ErrRequiredFieldsAreMissing, err.Unwrap())
	})

	t.Run("NewRequiredFieldsAreMissingErrorWithCause", func(t *testing.T) {
		cause := errors.New("empty mapping")
		err := errs.NewRequiredFieldsAreMissingErrorWithCause([]string{"customer_id"}, cause)

		assert.Equal(t, []string{"customer_id"}, err.Fields)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "required fields are missing: customer_id (cause: empty mapping)", err.Error())
		assert.Equal(t, errs.ErrRequiredFieldsAreMissing, err.Unwrap())
	})

	t.Run("single missing field", func(t *testing.T) {
		err := errs.NewRequiredFieldsAreMissingError("phone")
		assert.Equal(t, "required fields are missing: phone", err.Error())
	})
}

func TestEncodingIsMalformedError(t *testing.T) {
	t.Run("NewEncodingIsMalformedError", func(t *testing.T) {
		err := errs.NewEncodingIsMalformedError("customer")

		assert.Equal(t, "customer", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "encoding is malformed: customer", err.Error())
		assert.Equal(t, errs.ErrEncodingIsMalformed, err.Unwrap())
	})

	t.Run("NewEncodingIsMalformedErrorWithCause", func(t *testing.T) {
		cause := errors.New("unexpected end of JSON input")
		err := errs.NewEncodingIsMalformedErrorWithCause("customer", cause)

		assert.Equal(t, "customer", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "encoding is malformed: customer (cause: unexpected end of JSON input)", err.Error())
		assert.Equal(t, errs.ErrEncodingIsMalformed, err.Unwrap())
	})
}

func TestArgumentIsInvalidError(t *testing.T) {
	t.Run("NewArgumentIsInvalidError", func(t *testing.T) {
		err := errs.NewArgumentIsInvalidError("fields")

		assert.Equal(t, "fields", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "argument is invalid: fields", err.Error())
		assert.Equal(t, errs.ErrArgumentIsInvalid, err.Unwrap())
	})

	t.Run("NewArgumentIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("mapping must not be nil")
		err := errs.NewArgumentIsInvalidErrorWithCause("fields", cause)

		assert.Equal(t, "fields", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "argument is invalid: fields (cause: mapping must not be nil)", err.Error())
		assert.Equal(t, errs.ErrArgumentIsInvalid, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsTooShort)
		require.Error(t, errs.ErrValueIsWrongType)
		require.Error(t, errs.ErrValueHasInvalidFormat)
		require.Error(t, errs.ErrNameIsMalformed)
		require.Error(t, errs.ErrRequiredFieldsAreMissing)
		require.Error(t, errs.ErrEncodingIsMalformed)
		require.Error(t, errs.ErrArgumentIsInvalid)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is too short", errs.ErrValueIsTooShort.Error())
		assert.Equal(t, "value is wrong type", errs.ErrValueIsWrongType.Error())
		assert.Equal(t, "value has invalid format", errs.ErrValueHasInvalidFormat.Error())
		assert.Equal(t, "name is malformed", errs.ErrNameIsMalformed.Error())
		assert.Equal(t, "required fields are missing", errs.ErrRequiredFieldsAreMissing.Error())
		assert.Equal(t, "encoding is malformed", errs.ErrEncodingIsMalformed.Error())
		assert.Equal(t, "argument is invalid", errs.ErrArgumentIsInvalid.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		valueRequiredErr := errs.NewValueIsRequiredError("name")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("age", 150, 0, 120)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueTooShortErr := errs.NewValueIsTooShortError("name", "A", 2)
		require.ErrorIs(t, valueTooShortErr, errs.ErrValueIsTooShort)

		valueWrongTypeErr := errs.NewValueIsWrongTypeError("customer_id", "integer", "string")
		require.ErrorIs(t, valueWrongTypeErr, errs.ErrValueIsWrongType)

		invalidFormatErr := errs.NewValueHasInvalidFormatError("phone")
		require.ErrorIs(t, invalidFormatErr, errs.ErrValueHasInvalidFormat)

		nameMalformedErr := errs.NewNameIsMalformedError("contact_person")
		require.ErrorIs(t, nameMalformedErr, errs.ErrNameIsMalformed)

		fieldsMissingErr := errs.NewRequiredFieldsAreMissingError("phone")
		require.ErrorIs(t, fieldsMissingErr, errs.ErrRequiredFieldsAreMissing)

		encodingMalformedErr := errs.NewEncodingIsMalformedError("customer")
		require.ErrorIs(t, encodingMalformedErr, errs.ErrEncodingIsMalformed)

		argumentInvalidErr := errs.NewArgumentIsInvalidError("fields")
		require.ErrorIs(t, argumentInvalidErr, errs.ErrArgumentIsInvalid)
	})

	t.Run("errors.As extracts the concrete type", func(t *testing.T) {
		var target errs.ValueIsTooShortError
		err := errs.NewValueIsTooShortError("name", "A", 2)

		require.ErrorAs(t, err, &target)
		assert.Equal(t, "name", target.ParamName)
		assert.Equal(t, 2, target.MinLength)
	})

	t.Run("kinds do not match each other", func(t *testing.T) {
		err := errs.NewValueIsTooShortError("name", "A", 2)

		assert.NotErrorIs(t, err, errs.ErrValueIsRequired)
		assert.NotErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.NotErrorIs(t, err, errs.ErrValueHasInvalidFormat)
	})
}
