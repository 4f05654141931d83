package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"adlot.app/inventory/common/id"
	"adlot.app/inventory/internal/model"
	"adlot.app/inventory/internal/service"
	"adlot.app/inventory/internal/store"
)

var _ = Describe("OrganizationService", func() {
	var (
		svc       service.OrganizationService
		mockStore *mockOrganizationStore
		ctx       context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockStore = &mockOrganizationStore{}

		err := id.Init(1)
		Expect(err).NotTo(HaveOccurred())

		svc = service.NewOrganizationService(mockStore)
	})

	Describe("Create", func() {
		It("assigns a snowflake ID and stamps the caller's identity", func() {
			var captured *model.Organization
			mockStore.createFn = func(_ context.Context, org *model.Organization) error {
				captured = org
				return nil
			}

			org, err := svc.Create(ctx, store.ScopeFor("user-1"), service.CreateOrganizationInput{
				Name:  "Acme Outdoor",
				Email: "ads@acme.test",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(org.ID).NotTo(BeZero())
			Expect(org.Name).To(Equal("Acme Outdoor"))
			Expect(org.UserID).To(HaveValue(Equal("user-1")))
			Expect(captured.ID).To(Equal(org.ID))
		})

		It("leaves the owner empty when scoping is disabled", func() {
			mockStore.createFn = func(_ context.Context, _ *model.Organization) error { return nil }

			org, err := svc.Create(ctx, store.Scope{}, service.CreateOrganizationInput{
				Name:  "Open Billboards",
				Email: "open@billboards.test",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(org.UserID).To(BeNil())
		})

		It("propagates store errors", func() {
			mockStore.createFn = func(_ context.Context, _ *model.Organization) error {
				return errors.New("connection refused")
			}

			_, err := svc.Create(ctx, store.Scope{}, service.CreateOrganizationInput{
				Name:  "Acme",
				Email: "a@b.test",
			})
			Expect(err).To(MatchError(ContainSubstring("connection refused")))
		})
	})

	Describe("GetOrCreateDefault", func() {
		It("returns the existing default organization", func() {
			existing := &model.Organization{ID: 7, Name: model.DefaultOrganizationName}
			mockStore.getDefaultFn = func(_ context.Context, _ store.Scope) (*model.Organization, error) {
				return existing, nil
			}

			org, err := svc.GetOrCreateDefault(ctx, store.ScopeFor("user-1"))
			Expect(err).NotTo(HaveOccurred())
			Expect(org).To(Equal(existing))
		})

		It("provisions a default organization on first use", func() {
			var captured *model.Organization
			mockStore.createDefaultFn = func(_ context.Context, org *model.Organization) (bool, error) {
				captured = org
				return true, nil
			}

			org, err := svc.GetOrCreateDefault(ctx, store.ScopeFor("user-1"))
			Expect(err).NotTo(HaveOccurred())
			Expect(org.Name).To(Equal(model.DefaultOrganizationName))
			Expect(org.Email).To(Equal("contact+user-1@defaultorg.local"))
			Expect(org.UserID).To(HaveValue(Equal("user-1")))
			Expect(captured).To(Equal(org))
		})

		It("uses the shared default address when scoping is disabled", func() {
			var captured *model.Organization
			mockStore.createDefaultFn = func(_ context.Context, org *model.Organization) (bool, error) {
				captured = org
				return true, nil
			}

			_, err := svc.GetOrCreateDefault(ctx, store.Scope{})
			Expect(err).NotTo(HaveOccurred())
			Expect(captured.Email).To(Equal("contact@defaultorg.local"))
			Expect(captured.UserID).To(BeNil())
		})

		It("re-reads the winner's row after losing the insert race", func() {
			winner := &model.Organization{ID: 9, Name: model.DefaultOrganizationName}
			lookups := 0
			mockStore.getDefaultFn = func(_ context.Context, _ store.Scope) (*model.Organization, error) {
				lookups++
				if lookups == 1 {
					return nil, store.ErrNotFound
				}
				return winner, nil
			}
			mockStore.createDefaultFn = func(_ context.Context, _ *model.Organization) (bool, error) {
				return false, nil
			}

			org, err := svc.GetOrCreateDefault(ctx, store.ScopeFor("user-1"))
			Expect(err).NotTo(HaveOccurred())
			Expect(org).To(Equal(winner))
			Expect(lookups).To(Equal(2))
		})

		It("fails when neither the insert nor the re-read yields a row", func() {
			mockStore.createDefaultFn = func(_ context.Context, _ *model.Organization) (bool, error) {
				return false, nil
			}

			_, err := svc.GetOrCreateDefault(ctx, store.ScopeFor("user-1"))
			Expect(err).To(MatchError(ContainSubstring("failed to resolve default organization")))
		})
	})

	Describe("List", func() {
		It("passes the scope through to the store", func() {
			var seen store.Scope
			mockStore.listFn = func(_ context.Context, scope store.Scope) ([]model.Organization, error) {
				seen = scope
				return []model.Organization{{ID: 1}}, nil
			}

			orgs, err := svc.List(ctx, store.ScopeFor("user-1"))
			Expect(err).NotTo(HaveOccurred())
			Expect(orgs).To(HaveLen(1))
			Expect(seen.UserID).To(HaveValue(Equal("user-1")))
		})
	})
})
