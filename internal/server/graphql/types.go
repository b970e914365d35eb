package graphql

import (
	gql "github.com/graphql-go/graphql"

	"github.com/slugmart/slugmart/internal/server/models"
)

var nameType = gql.NewObject(gql.ObjectConfig{
	Name: "Name",
	Fields: gql.Fields{
		"first": &gql.Field{Type: gql.NewNonNull(gql.String)},
		"last":  &gql.Field{Type: gql.NewNonNull(gql.String)},
	},
})

var profileType = gql.NewObject(gql.ObjectConfig{
	Name: "Profile",
	Fields: gql.Fields{
		"username":       &gql.Field{Type: gql.NewNonNull(gql.String)},
		"bio":            &gql.Field{Type: gql.String},
		"profilePicture": &gql.Field{Type: gql.String},
	},
})

var accountType = gql.NewObject(gql.ObjectConfig{
	Name: "Account",
	Fields: gql.Fields{
		"id":         &gql.Field{Type: gql.NewNonNull(gql.ID)},
		"email":      &gql.Field{Type: gql.NewNonNull(gql.String)},
		"name":       &gql.Field{Type: gql.NewNonNull(nameType)},
		"roles":      &gql.Field{Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(gql.String)))},
		"restricted": &gql.Field{Type: gql.NewNonNull(gql.Boolean)},
		"profile":    &gql.Field{Type: gql.NewNonNull(profileType)},
	},
})

var authenticatedType = gql.NewObject(gql.ObjectConfig{
	Name: "Authenticated",
	Fields: gql.Fields{
		"id":          &gql.Field{Type: gql.NewNonNull(gql.ID)},
		"name":        &gql.Field{Type: gql.NewNonNull(nameType)},
		"accessToken": &gql.Field{Type: gql.NewNonNull(gql.String)},
	},
})

var sessionAccountType = gql.NewObject(gql.ObjectConfig{
	Name: "SessionAccount",
	Fields: gql.Fields{
		"id": &gql.Field{Type: gql.NewNonNull(gql.ID)},
	},
})

var listingType = gql.NewObject(gql.ObjectConfig{
	Name: "Listing",
	Fields: gql.Fields{
		"id":          &gql.Field{Type: gql.NewNonNull(gql.ID)},
		"ownerId":     &gql.Field{Type: gql.NewNonNull(gql.ID)},
		"brand":       &gql.Field{Type: gql.NewNonNull(gql.String)},
		"name":        &gql.Field{Type: gql.NewNonNull(gql.String)},
		"description": &gql.Field{Type: gql.NewNonNull(gql.String)},
		"imageUrls":   &gql.Field{Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(gql.String)))},
	},
})

var paginatedListingsType = gql.NewObject(gql.ObjectConfig{
	Name: "PaginatedListings",
	Fields: gql.Fields{
		"listings":   &gql.Field{Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(listingType)))},
		"totalCount": &gql.Field{Type: gql.NewNonNull(gql.Int)},
	},
})

var messageType = gql.NewObject(gql.ObjectConfig{
	Name: "Message",
	Fields: gql.Fields{
		"id":          &gql.Field{Type: gql.NewNonNull(gql.ID)},
		"itemOwnerId": &gql.Field{Type: gql.NewNonNull(gql.ID)},
		"senderId":    &gql.Field{Type: gql.NewNonNull(gql.ID)},
		"content":     &gql.Field{Type: gql.NewNonNull(gql.String)},
	},
})

var shippingStatusEnum = func() *gql.Enum {
	values := gql.EnumValueConfigMap{}
	for _, s := range models.ShippingStatuses {
		values[string(s)] = &gql.EnumValueConfig{Value: s}
	}
	return gql.NewEnum(gql.EnumConfig{Name: "ShippingStatus", Values: values})
}()

var orderType = gql.NewObject(gql.ObjectConfig{
	Name: "Order",
	Fields: gql.Fields{
		"id":             &gql.Field{Type: gql.NewNonNull(gql.ID)},
		"buyerId":        &gql.Field{Type: gql.NewNonNull(gql.ID)},
		"sellerId":       &gql.Field{Type: gql.NewNonNull(gql.ID)},
		"itemId":         &gql.Field{Type: gql.NewNonNull(gql.ID)},
		"shippingStatus": &gql.Field{Type: gql.NewNonNull(shippingStatusEnum)},
		"data":           &gql.Field{Type: gql.String},
	},
})

var uploadURLType = gql.NewObject(gql.ObjectConfig{
	Name: "S3UploadUrl",
	Fields: gql.Fields{
		"preSignedUrl": &gql.Field{Type: gql.NewNonNull(gql.String)},
		"fileUrl":      &gql.Field{Type: gql.NewNonNull(gql.String)},
	},
})

// Inputs.

var credentialsInput = gql.NewInputObject(gql.InputObjectConfig{
	Name: "Credentials",
	Fields: gql.InputObjectConfigFieldMap{
		"email":    &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
		"password": &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
	},
})

var newAccountInput = gql.NewInputObject(gql.InputObjectConfig{
	Name: "NewAccount",
	Fields: gql.InputObjectConfigFieldMap{
		"email":     &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
		"password":  &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
		"firstName": &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
		"lastName":  &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
		"roles":     &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(gql.String)))},
		"username":  &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
		"bio":       &gql.InputObjectFieldConfig{Type: gql.String},
	},
})

var profileInput = gql.NewInputObject(gql.InputObjectConfig{
	Name: "ProfileInput",
	Fields: gql.InputObjectConfigFieldMap{
		"username":       &gql.InputObjectFieldConfig{Type: gql.String},
		"bio":            &gql.InputObjectFieldConfig{Type: gql.String},
		"profilePicture": &gql.InputObjectFieldConfig{Type: gql.String},
	},
})

var newListingInput = gql.NewInputObject(gql.InputObjectConfig{
	Name: "NewListing",
	Fields: gql.InputObjectConfigFieldMap{
		"ownerId":     &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.ID)},
		"brand":       &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
		"name":        &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
		"description": &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
		"imageUrls":   &gql.InputObjectFieldConfig{Type: gql.NewList(gql.NewNonNull(gql.String))},
	},
})

var newMessageInput = gql.NewInputObject(gql.InputObjectConfig{
	Name: "NewMessage",
	Fields: gql.InputObjectConfigFieldMap{
		"itemOwnerId": &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.ID)},
		"senderId":    &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.ID)},
		"content":     &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
	},
})

var newOrderInput = gql.NewInputObject(gql.InputObjectConfig{
	Name: "NewOrder",
	Fields: gql.InputObjectConfigFieldMap{
		"buyerId":        &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.ID)},
		"sellerId":       &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.ID)},
		"itemId":         &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.ID)},
		"shippingStatus": &gql.InputObjectFieldConfig{Type: shippingStatusEnum},
		"data":           &gql.InputObjectFieldConfig{Type: gql.String},
	},
})
