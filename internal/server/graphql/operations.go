package graphql

import (
	"context"
	"encoding/json"
	"fmt"

	gql "github.com/graphql-go/graphql"

	"github.com/slugmart/slugmart/internal/server/auth"
	"github.com/slugmart/slugmart/internal/server/models"
	"github.com/slugmart/slugmart/internal/server/services"
)

// Uploader is the part of services.UploadService the schema needs.
type Uploader interface {
	GenerateUploadURL(ctx context.Context, req models.UploadRequest) (*models.UploadURL, error)
}

// Services are the resolvers' dependencies.
type Services struct {
	Auth     *services.AuthService
	Accounts *services.AccountService
	Listings *services.ListingService
	Messages *services.MessageService
	Orders   *services.OrderService
	Uploads  Uploader
}

// Operation is a top-level query or mutation field together with the access
// it requires. The gate's policy is derived from these declarations.
type Operation struct {
	Name   string
	Access auth.Access
	Field  *gql.Field
}

func public(name string, f *gql.Field) Operation {
	return Operation{Name: name, Access: auth.Public, Field: f}
}

func protected(name string, f *gql.Field) Operation {
	return Operation{Name: name, Access: auth.Protected, Field: f}
}

func resolver(fn gql.FieldResolveFn) gql.FieldResolveFn {
	return func(p gql.ResolveParams) (any, error) {
		v, err := fn(p)
		if err != nil {
			return nil, presentError(err)
		}
		return v, nil
	}
}

// decodeInput converts an input object argument into dst.
func decodeInput(p gql.ResolveParams, name string, dst any) error {
	raw, err := json.Marshal(p.Args[name])
	if err != nil {
		return fmt.Errorf("encode argument %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode argument %s: %w", name, err)
	}
	return nil
}

func stringArg(p gql.ResolveParams, name string) string {
	s, _ := p.Args[name].(string)
	return s
}

func intArg(p gql.ResolveParams, name string, def int) int {
	if n, ok := p.Args[name].(int); ok {
		return n
	}
	return def
}

func nonNullString() *gql.ArgumentConfig {
	return &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)}
}

func nonNullID() *gql.ArgumentConfig {
	return &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)}
}

func nonNullInput(t gql.Input) *gql.ArgumentConfig {
	return &gql.ArgumentConfig{Type: gql.NewNonNull(t)}
}

func pageArgs(extra gql.FieldConfigArgument) gql.FieldConfigArgument {
	args := gql.FieldConfigArgument{
		"page":     &gql.ArgumentConfig{Type: gql.Int, DefaultValue: models.DefaultPage},
		"pageSize": &gql.ArgumentConfig{Type: gql.Int, DefaultValue: models.DefaultPageSize},
	}
	for k, v := range extra {
		args[k] = v
	}
	return args
}

func pageFrom(p gql.ResolveParams) models.Page {
	return models.Page{
		Number: intArg(p, "page", models.DefaultPage),
		Size:   intArg(p, "pageSize", models.DefaultPageSize),
	}
}

func queryOperations(s Services) []Operation {
	return []Operation{
		public("check", &gql.Field{
			Type: gql.NewNonNull(sessionAccountType),
			Args: gql.FieldConfigArgument{"input": nonNullString()},
			Resolve: resolver(func(p gql.ResolveParams) (any, error) {
				return s.Auth.Check(p.Context, stringArg(p, "input"))
			}),
		}),

		protected("account", &gql.Field{
			Type: gql.NewNonNull(accountType),
			Args: gql.FieldConfigArgument{"input": nonNullID()},
			Resolve: resolver(func(p gql.ResolveParams) (any, error) {
				return s.Accounts.Account(p.Context, stringArg(p, "input"))
			}),
		}),
		protected("accountByEmail", &gql.Field{
			Type: gql.NewNonNull(accountType),
			Args: gql.FieldConfigArgument{"input": nonNullString()},
			Resolve: resolver(func(p gql.ResolveParams) (any, error) {
				return s.Accounts.AccountByEmail(p.Context, stringArg(p, "input"))
			}),
		}),
		protected("allAccounts", &gql.Field{
			Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(accountType))),
			Resolve: resolver(func(p gql.ResolveParams) (any, error) {
				return s.Accounts.AllAccounts(p.Context)
			}),
		}),
		protected("restrictedVendors", &gql.Field{
			Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(accountType))),
			Resolve: resolver(func(p gql.ResolveParams) (any, error) {
				return s.Accounts.RestrictedVendors(p.Context)
			}),
		}),

		protected("listing", &gql.Field{
			Type: gql.NewNonNull(listingType),
			Args: gql.FieldConfigArgument{"id": nonNullID()},
			Resolve: resolver(func(p gql.ResolveParams) (any, error) {
				return s.Listings.Listing(p.Context, stringArg(p, "id"))
			}),
		}),
		protected("allListings", &gql.Field{
			Type: gql.NewNonNull(paginatedListingsType),
			Args: pageArgs(nil),
			Resolve: resolver(func(p gql.ResolveParams) (any, error) {
				return s.Listings.AllListings(p.Context, pageFrom(p))
			}),
		}),
		protected("searchListings", &gql.Field{
			Type: gql.NewNonNull(paginatedListingsType),
			Args: pageArgs(gql.FieldConfigArgument{"searchTerm": nonNullString()}),
			Resolve: resolver(func(p gql.ResolveParams) (any, error) {
				return s.Listings.SearchListings(p.Context, stringArg(p, "searchTerm"), pageFrom(p))
			}),
		}),

		protected("message", &gql.Field{
			Type: gql.NewNonNull(messageType),
			Args: gql.FieldConfigArgument{"input": nonNullID()},
			Resolve: resolver(func(p gql.ResolveParams) (any, error) {
				return s.Messages.Message(p.Context, stringArg(p, "input"))
			}),
		}),
		protected("messagesByItemOwner", &gql.Field{
			Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(messageType))),
			Args: gql.FieldConfigArgument{"input": nonNullID()},
			Resolve: resolver(func(p gql.ResolveParams) (any, error) {
				return s.Messages.MessagesByItemOwner(p.Context, stringArg(p, "input"))
			}),
		}),
		protected("messagesBySender", &gql.Field{
			Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(messageType))),
			Args: gql.FieldConfigArgument{"input": nonNullID()},
			Resolve: resolver(func(p gql.ResolveParams) (any, error) {
				return s.Messages.MessagesBySender(p.Context, stringArg(p, "input"))
			}),
		}),

		protected("order", &gql.Field{
			Type: gql.NewNonNull(orderType),
			Args: gql.FieldConfigArgument{"id": nonNullID()},
			Resolve: resolver(func(p gql.ResolveParams) (any, error) {
				return s.Orders.Order(p.Context, stringArg(p, "id"))
			}),
		}),
		protected("allOrders", &gql.Field{
			Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(orderType))),
			Resolve: resolver(func(p gql.ResolveParams) (any, error) {
				return s.Orders.AllOrders(p.Context)
			}),
		}),
	}
}

func mutationOperations(s Services) []Operation {
	accountFlag := func(name string, byEmail bool, fn func(ctx context.Context, key string) (bool, error)) Operation {
		arg := nonNullID()
		if byEmail {
			arg = nonNullString()
		}
		return protected(name, &gql.Field{
			Type: gql.NewNonNull(gql.Boolean),
			Args: gql.FieldConfigArgument{"input": arg},
			Resolve: resolver(func(p gql.ResolveParams) (any, error) {
				return fn(p.Context, stringArg(p, "input"))
			}),
		})
	}

	return []Operation{
		public("login", &gql.Field{
			Type: gql.NewNonNull(authenticatedType),
			Args: gql.FieldConfigArgument{"input": nonNullInput(credentialsInput)},
			Resolve: resolver(func(p gql.ResolveParams) (any, error) {
				var in struct {
					Email    string `json:"email"`
					Password string `json:"password"`
				}
				if err := decodeInput(p, "input", &in); err != nil {
					return nil, err
				}
				return s.Auth.Login(p.Context, in.Email, in.Password)
			}),
		}),
		public("makeAccount", &gql.Field{
			Type: gql.NewNonNull(accountType),
			Args: gql.FieldConfigArgument{"input": nonNullInput(newAccountInput)},
			Resolve: resolver(func(p gql.ResolveParams) (any, error) {
				var in models.NewAccount
				if err := decodeInput(p, "input", &in); err != nil {
					return nil, err
				}
				return s.Accounts.MakeAccount(p.Context, in)
			}),
		}),

		accountFlag("deleteAccount", false, s.Accounts.DeleteAccount),
		accountFlag("deleteAccountByEmail", true, s.Accounts.DeleteAccountByEmail),
		accountFlag("suspendAccount", false, s.Accounts.SuspendAccount),
		accountFlag("suspendAccountByEmail", true, s.Accounts.SuspendAccountByEmail),
		accountFlag("resumeAccount", false, s.Accounts.ResumeAccount),
		accountFlag("resumeAccountByEmail", true, s.Accounts.ResumeAccountByEmail),
		protected("updateProfile", &gql.Field{
			Type: gql.NewNonNull(profileType),
			Args: gql.FieldConfigArgument{"input": nonNullInput(profileInput)},
			Resolve: resolver(func(p gql.ResolveParams) (any, error) {
				var in models.ProfileUpdate
				if err := decodeInput(p, "input", &in); err != nil {
					return nil, err
				}
				return s.Accounts.UpdateProfile(p.Context, in)
			}),
		}),

		protected("createListing", &gql.Field{
			Type: gql.NewNonNull(listingType),
			Args: gql.FieldConfigArgument{"input": nonNullInput(newListingInput)},
			Resolve: resolver(func(p gql.ResolveParams) (any, error) {
				var in models.NewListing
				if err := decodeInput(p, "input", &in); err != nil {
					return nil, err
				}
				return s.Listings.CreateListing(p.Context, in)
			}),
		}),
		protected("deleteListing", &gql.Field{
			Type: gql.NewNonNull(gql.Boolean),
			Args: gql.FieldConfigArgument{"id": nonNullID()},
			Resolve: resolver(func(p gql.ResolveParams) (any, error) {
				return s.Listings.DeleteListing(p.Context, stringArg(p, "id"))
			}),
		}),
		protected("updateListingImages", &gql.Field{
			Type: gql.NewNonNull(gql.Boolean),
			Args: gql.FieldConfigArgument{
				"id":        nonNullID(),
				"imageUrls": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(gql.String)))},
			},
			Resolve: resolver(func(p gql.ResolveParams) (any, error) {
				var urls []string
				if err := decodeInput(p, "imageUrls", &urls); err != nil {
					return nil, err
				}
				return s.Listings.UpdateListingImages(p.Context, stringArg(p, "id"), urls)
			}),
		}),

		protected("createMessage", &gql.Field{
			Type: gql.NewNonNull(messageType),
			Args: gql.FieldConfigArgument{"input": nonNullInput(newMessageInput)},
			Resolve: resolver(func(p gql.ResolveParams) (any, error) {
				var in models.NewMessage
				if err := decodeInput(p, "input", &in); err != nil {
					return nil, err
				}
				return s.Messages.CreateMessage(p.Context, in)
			}),
		}),
		protected("deleteMessage", &gql.Field{
			Type: gql.NewNonNull(gql.Boolean),
			Args: gql.FieldConfigArgument{"input": nonNullID()},
			Resolve: resolver(func(p gql.ResolveParams) (any, error) {
				return s.Messages.DeleteMessage(p.Context, stringArg(p, "input"))
			}),
		}),

		protected("createOrder", &gql.Field{
			Type: gql.NewNonNull(orderType),
			Args: gql.FieldConfigArgument{"input": nonNullInput(newOrderInput)},
			Resolve: resolver(func(p gql.ResolveParams) (any, error) {
				var in models.NewOrder
				if err := decodeInput(p, "input", &in); err != nil {
					return nil, err
				}
				return s.Orders.CreateOrder(p.Context, in)
			}),
		}),
		protected("deleteOrder", &gql.Field{
			Type: gql.NewNonNull(gql.Boolean),
			Args: gql.FieldConfigArgument{"id": nonNullID()},
			Resolve: resolver(func(p gql.ResolveParams) (any, error) {
				return s.Orders.DeleteOrder(p.Context, stringArg(p, "id"))
			}),
		}),
		protected("updateOrderStatus", &gql.Field{
			Type: gql.NewNonNull(gql.Boolean),
			Args: gql.FieldConfigArgument{
				"id":     nonNullID(),
				"status": &gql.ArgumentConfig{Type: gql.NewNonNull(shippingStatusEnum)},
			},
			Resolve: resolver(func(p gql.ResolveParams) (any, error) {
				status, _ := p.Args["status"].(models.ShippingStatus)
				return s.Orders.UpdateOrderStatus(p.Context, stringArg(p, "id"), status)
			}),
		}),

		protected("generateUploadUrl", &gql.Field{
			Type: gql.NewNonNull(uploadURLType),
			Args: gql.FieldConfigArgument{
				"fileName":    nonNullString(),
				"contentType": nonNullString(),
				"folder":      nonNullString(),
			},
			Resolve: resolver(func(p gql.ResolveParams) (any, error) {
				return s.Uploads.GenerateUploadURL(p.Context, models.UploadRequest{
					FileName:    stringArg(p, "fileName"),
					ContentType: stringArg(p, "contentType"),
					Folder:      stringArg(p, "folder"),
				})
			}),
		}),
	}
}
