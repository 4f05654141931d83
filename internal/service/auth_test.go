package service_test

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"adlot.app/inventory/core/config"
	"adlot.app/inventory/internal/service"
)

func signToken(secret string, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	Expect(err).NotTo(HaveOccurred())
	return signed
}

var _ = Describe("JWTVerifier", func() {
	var (
		verifier service.TokenVerifier
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		verifier = service.NewJWTVerifier(config.AuthConfig{
			Mode:      config.AuthModeRequired,
			JWTSecret: "test-secret",
		})
	})

	It("resolves a valid token to an identity", func() {
		token := signToken("test-secret", jwt.MapClaims{
			"sub":     "user-1",
			"email":   "user@example.test",
			"picture": "https://img.example.test/u1.png",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})

		identity, err := verifier.Verify(ctx, token)
		Expect(err).NotTo(HaveOccurred())
		Expect(identity.UserID).To(Equal("user-1"))
		Expect(identity.Email).To(HaveValue(Equal("user@example.test")))
		Expect(identity.ImageURL).To(Equal("https://img.example.test/u1.png"))
	})

	It("rejects a token signed with the wrong secret", func() {
		token := signToken("other-secret", jwt.MapClaims{
			"sub": "user-1",
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		_, err := verifier.Verify(ctx, token)
		Expect(err).To(MatchError(service.ErrInvalidToken))
	})

	It("rejects an expired token", func() {
		token := signToken("test-secret", jwt.MapClaims{
			"sub": "user-1",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})

		_, err := verifier.Verify(ctx, token)
		Expect(err).To(MatchError(service.ErrInvalidToken))
	})

	It("rejects a token without a subject", func() {
		token := signToken("test-secret", jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		_, err := verifier.Verify(ctx, token)
		Expect(err).To(MatchError(service.ErrInvalidToken))
	})

	It("rejects garbage", func() {
		_, err := verifier.Verify(ctx, "not-a-token")
		Expect(err).To(MatchError(service.ErrInvalidToken))
	})

	Context("with issuer checking enabled", func() {
		BeforeEach(func() {
			verifier = service.NewJWTVerifier(config.AuthConfig{
				Mode:      config.AuthModeRequired,
				JWTSecret: "test-secret",
				Issuer:    "https://auth.example.test",
			})
		})

		It("rejects a token from another issuer", func() {
			token := signToken("test-secret", jwt.MapClaims{
				"sub": "user-1",
				"iss": "https://evil.example.test",
				"exp": time.Now().Add(time.Hour).Unix(),
			})

			_, err := verifier.Verify(ctx, token)
			Expect(err).To(MatchError(service.ErrInvalidToken))
		})

		It("accepts a token from the configured issuer", func() {
			token := signToken("test-secret", jwt.MapClaims{
				"sub": "user-1",
				"iss": "https://auth.example.test",
				"exp": time.Now().Add(time.Hour).Unix(),
			})

			identity, err := verifier.Verify(ctx, token)
			Expect(err).NotTo(HaveOccurred())
			Expect(identity.UserID).To(Equal("user-1"))
		})
	})
})
