package dto

import (
	"halodkm_backend/internals/features/events/service"
)

// 🔹 Penerima bantuan
type RecipientRequest struct {
	Nama         string  `json:"nama"          validate:"required,max=255"`
	Alamat       *string `json:"alamat"`
	NoHP         *string `json:"no_hp"         validate:"omitempty,max=20"`
	JenisBantuan *string `json:"jenis_bantuan" validate:"omitempty,max=100"`
	Jumlah       *string `json:"jumlah"        validate:"omitempty,max=100"`
	Keterangan   *string `json:"keterangan"`
}

func (r *RecipientRequest) ToInput() service.RecipientInput {
	return service.RecipientInput{
		Nama:         r.Nama,
		Alamat:       r.Alamat,
		NoHP:         r.NoHP,
		JenisBantuan: r.JenisBantuan,
		Jumlah:       r.Jumlah,
		Keterangan:   r.Keterangan,
	}
}

// 🔹 Anggota panitia
type CommitteeRequest struct {
	Nama    string  `json:"nama"    validate:"required,max=255"`
	Jabatan *string `json:"jabatan" validate:"omitempty,max=100"`
	NoHP    *string `json:"no_hp"   validate:"omitempty,max=20"`
}

func (r *CommitteeRequest) ToInput() service.CommitteeInput {
	return service.CommitteeInput{
		Nama:    r.Nama,
		Jabatan: r.Jabatan,
		NoHP:    r.NoHP,
	}
}
