package httpx

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/makaan/makaan-api/internal/adapters/password"
	"github.com/makaan/makaan-api/internal/adapters/token"
	domainauth "github.com/makaan/makaan-api/internal/domain/auth"
	"github.com/makaan/makaan-api/internal/mocks"
	"github.com/makaan/makaan-api/internal/service"
)

const (
	testSecret     = "router-test-secret-0123456789abcdef"
	testCookieName = "auth-token"
)

type routerMocks struct {
	users      *mocks.MockUserStore
	properties *mocks.MockPropertyStore
	inquiries  *mocks.MockInquiryStore
	images     *mocks.MockImageStore
}

// newTestRouter wires real services (real token codec, real low-cost bcrypt
// hasher) over mocked stores, then builds the full middleware chain.
func newTestRouter(t *testing.T) (http.Handler, routerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := routerMocks{
		users:      mocks.NewMockUserStore(ctrl),
		properties: mocks.NewMockPropertyStore(ctrl),
		inquiries:  mocks.NewMockInquiryStore(ctrl),
		images:     mocks.NewMockImageStore(ctrl),
	}

	authSvc := service.MustNewAuthService(service.AuthServiceOptions{
		Users: m.users,
		Crypto: service.AuthCrypto{
			Hasher: password.NewHasher(bcrypt.MinCost),
			Tokens: token.NewCodec(testSecret, time.Hour),
		},
	})
	listingSvc := service.MustNewListingService(service.ListingServiceOptions{
		Stores: service.ListingStores{Properties: m.properties, Users: m.users},
		Media:  service.ListingMedia{Images: m.images},
	})
	inquirySvc := service.MustNewInquiryService(service.InquiryServiceOptions{
		Inquiries: m.inquiries,
	})

	router := NewRouter(RouterServices{
		Auth:           authSvc,
		Listings:       listingSvc,
		Inquiries:      inquirySvc,
		Cookie:         CookieSettings{Name: testCookieName, TTL: time.Hour},
		MaxUploadBytes: 32 << 20,
	})
	return router, m
}

// mintSessionCookie signs a token for the given identity with the shared
// test secret.
func mintSessionCookie(t *testing.T, userID, email string) *http.Cookie {
	t.Helper()
	tok, err := token.NewCodec(testSecret, time.Hour).
		Issue(domainauth.Claims{UserID: userID, Email: email})
	require.NoError(t, err)
	return &http.Cookie{Name: testCookieName, Value: tok}
}

// mintExpiredCookie signs a token that is already past its expiry.
func mintExpiredCookie(t *testing.T, userID string) *http.Cookie {
	t.Helper()
	past := func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tok, err := token.NewCodec(testSecret, time.Hour).WithClock(past).
		Issue(domainauth.Claims{UserID: userID, Email: "old@example.com"})
	require.NoError(t, err)
	return &http.Cookie{Name: testCookieName, Value: tok}
}

// discardLogger returns a logger that drops everything.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// findCookie returns the named Set-Cookie value from a response, or nil.
func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
