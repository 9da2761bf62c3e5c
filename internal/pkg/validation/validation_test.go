package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"budi@example.com", "a@b.co", "nama.lengkap+tag@mail.co.id"}
	invalid := []string{"", "budi", "budi@", "budi@example", "@example.com", "bu di@example.com", "budi@exa mple.com", "budi@@example.com"}

	for _, s := range valid {
		assert.True(t, IsValidEmail(s), s)
	}
	for _, s := range invalid {
		assert.False(t, IsValidEmail(s), s)
	}
}

func TestPasswordIssues(t *testing.T) {
	tests := []struct {
		password string
		want     []string
	}{
		{"abc", []string{MsgPasswordLength, MsgPasswordUppercase, MsgPasswordDigit}},
		{"Abcdefgh1", nil},
		{"", []string{MsgPasswordLength, MsgPasswordUppercase, MsgPasswordLowercase, MsgPasswordDigit}},
		{"ABCDEFGH1", []string{MsgPasswordLowercase}},
		{"abcdefgh1", []string{MsgPasswordUppercase}},
		{"Abcdefghi", []string{MsgPasswordDigit}},
		{"Ab1", []string{MsgPasswordLength}},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, PasswordIssues(tt.password))
		})
	}
}

type sample struct {
	Title    string   `label:"Judul" validate:"required,max=5"`
	Email    string   `label:"Email" validate:"simple_email"`
	Price    string   `label:"Harga" validate:"positive_decimal"`
	Rooms    string   `label:"Kamar" validate:"count"`
	Kind     string   `label:"Jenis" validate:"oneof=a b"`
	Pictures []string `label:"Foto" validate:"max=1"`
}

func TestStructMessages(t *testing.T) {
	msgs := Struct(sample{
		Title:    "",
		Email:    "nope",
		Price:    "-1",
		Rooms:    "2a",
		Kind:     "c",
		Pictures: []string{"x", "y"},
	})

	assert.Equal(t, []string{
		"Judul wajib diisi",
		MsgEmailInvalid,
		"Harga harus berupa angka lebih dari 0",
		"Kamar harus berupa bilangan bulat",
		"Jenis tidak valid",
		"Foto maksimal 1 item",
	}, msgs)
}

func TestStructValid(t *testing.T) {
	msgs := Struct(sample{Title: "Rumah", Email: "a@b.id", Price: "2.5", Rooms: "", Kind: "a"})
	assert.Nil(t, msgs)
}

type bounded struct {
	Price string `label:"Harga" validate:"positive_decimal,price_range"`
	Rooms string `label:"Kamar" validate:"count,count_range"`
}

func TestStructBounds(t *testing.T) {
	tests := []struct {
		name  string
		input bounded
		want  []string
	}{
		{"within bounds", bounded{Price: "999999999.999", Rooms: "000000000012"}, nil},
		{"price too large", bounded{Price: "1000000000", Rooms: "3"}, []string{"Harga harus di bawah 1000000000 dengan maksimal 3 angka desimal"}},
		{"price too precise", bounded{Price: "2.5001", Rooms: "3"}, []string{"Harga harus di bawah 1000000000 dengan maksimal 3 angka desimal"}},
		{"trailing zeros are fine", bounded{Price: "2.5000", Rooms: "3"}, nil},
		{"count overflow", bounded{Price: "2.5", Rooms: "99999999999999999999999"}, []string{"Kamar maksimal 9 digit"}},
		{"non digits keep their message", bounded{Price: "2.5", Rooms: "-1"}, []string{"Kamar harus berupa bilangan bulat"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Struct(tt.input))
		})
	}
}
