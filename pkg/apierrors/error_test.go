package apierrors_test

import (
	"encoding/json"
	"os"
	"testing"

	"creatingtasks/pkg/apierrors"
	"creatingtasks/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestMain(m *testing.M) {
	// Initialize minimal translator for tests
	translator.Translator = i18n.NewBundle(language.English)
	// Add a test message
	err := translator.Translator.AddMessages(language.English, &i18n.Message{
		ID:    "test_key",
		Other: "Test message",
	})
	if err != nil {
		os.Exit(1)
	}
	err = translator.Translator.AddMessages(language.Russian, &i18n.Message{
		ID:    "test_key",
		Other: "Тестовое сообщение",
	})
	if err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func TestCreateError_ReturnsJsonErr(t *testing.T) {
	err := apierrors.CreateError(400, "test_key", "en")
	assert.Equal(t, 400, err.ErrDetails.Code)
	assert.Equal(t, "Test message", err.ErrDetails.Message)
	assert.Nil(t, err.ErrDetails.Fields)
}

func TestGetTransErrorMsg_ReturnsTranslation(t *testing.T) {
	assert.Equal(t, "Test message", apierrors.GetTransErrorMsg("test_key", "en"))
	assert.Equal(t, "Тестовое сообщение", apierrors.GetTransErrorMsg("test_key", "ru"))
}

func TestGetTransErrorMsg_FallbackToKey(t *testing.T) {
	// No translation exists for "unknown_key"
	msg := apierrors.GetTransErrorMsg("unknown_key", "en")
	assert.Equal(t, "unknown_key", msg)
}

func TestJsonErr_ErrorMethod(t *testing.T) {
	err := apierrors.CreateError(500, "test_key", "en")
	assert.Equal(t, "Code: 500, Message: Test message", err.Error())
}

func TestCreateValidationError_SerializesFields(t *testing.T) {
	err := apierrors.CreateValidationError(400, "test_key", "en", map[string]string{"title": "required"})

	body, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)
	assert.JSONEq(t, `{"error":{"code":400,"message":"Test message","fields":{"title":"required"}}}`, string(body))

	empty, marshalErr := json.Marshal(apierrors.CreateValidationError(400, "test_key", "en", nil))
	require.NoError(t, marshalErr)
	assert.JSONEq(t, `{"error":{"code":400,"message":"Test message"}}`, string(empty))
}
