package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateInquiryRequestValidate(t *testing.T) {
	valid := CreateInquiryRequest{
		PropertyID: "p1",
		Name:       "Jane",
		Email:      "jane@example.com",
		Message:    "Is this still available?",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*CreateInquiryRequest)
	}{
		{name: "missing property id", mutate: func(r *CreateInquiryRequest) { r.PropertyID = "" }},
		{name: "missing name", mutate: func(r *CreateInquiryRequest) { r.Name = "  " }},
		{name: "missing email", mutate: func(r *CreateInquiryRequest) { r.Email = "" }},
		{name: "malformed email", mutate: func(r *CreateInquiryRequest) { r.Email = "nope" }},
		{name: "missing message", mutate: func(r *CreateInquiryRequest) { r.Message = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestCreateInquiryRequestValidate_PhoneOptional(t *testing.T) {
	req := CreateInquiryRequest{
		PropertyID: "p1",
		Name:       "Jane",
		Email:      "jane@example.com",
		Message:    "Call me back",
	}
	assert.NoError(t, req.Validate())
	assert.Nil(t, req.Phone)
}
