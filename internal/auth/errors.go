package auth

import "errors"

// Error codes mirror the auth provider convention consumed by the clients.
const (
	CodeInvalidCredential = "auth/invalid-credential"
	CodeUserNotFound      = "auth/user-not-found"
	CodeWrongPassword     = "auth/wrong-password"
	CodeEmailInUse        = "auth/email-already-in-use"
	CodeWeakPassword      = "auth/weak-password"
)

// Error is an auth failure with a stable code the client can branch on.
type Error struct {
	Code string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code
}

func (e *Error) Unwrap() error { return e.Err }

func newError(code string, err error) *Error {
	return &Error{Code: code, Err: err}
}

// userMessages maps error codes to the Vietnamese messages shown to users.
var userMessages = map[string]string{
	CodeInvalidCredential: "Email hoặc mật khẩu không đúng!",
	CodeUserNotFound:      "Tài khoản không tồn tại!",
	CodeWrongPassword:     "Mật khẩu không đúng!",
	CodeEmailInUse:        "Email đã được sử dụng!",
	CodeWeakPassword:      "Mật khẩu quá yếu! Vui lòng dùng mật khẩu mạnh hơn.",
}

const genericLoginMessage = "Đăng nhập thất bại. Vui lòng thử lại!"
const genericSignupMessage = "Đăng ký thất bại. Vui lòng thử lại!"

// UserMessage translates an error into the message shown to the user.
// Unmapped codes and non-auth errors get the generic fallback for the flow.
func UserMessage(err error, signup bool) string {
	generic := genericLoginMessage
	if signup {
		generic = genericSignupMessage
	}

	var authErr *Error
	if !errors.As(err, &authErr) {
		return generic
	}
	if msg, ok := userMessages[authErr.Code]; ok {
		return msg
	}
	return generic
}
