// Package catalog serves the static reference data shown in the app: the
// deployed RVM locations around Yogyakarta and the point redemption
// providers.
package catalog

import "github.com/myebiez/daur-cuan-app/internal/model"

var locations = []model.Location{
	{ID: 1, Name: "Universitas AMIKOM Yogyakarta", Address: "Jl. Ring Road Utara, Condongcatur, Sleman", Lat: -7.7599, Lng: 110.4083, Status: "Active", Type: "Campus", Capacity: 45},
	{ID: 2, Name: "Universitas Gadjah Mada (UGM)", Address: "Bulaksumur, Caturtunggal, Sleman", Lat: -7.7705, Lng: 110.3775, Status: "Active", Type: "Campus", Capacity: 82},
	{ID: 3, Name: "UPN 'Veteran' Yogyakarta", Address: "Jl. SWK 104 (Lingkar Utara), Depok, Sleman", Lat: -7.7615, Lng: 110.409, Status: "Active", Type: "Campus", Capacity: 65},
	{ID: 4, Name: "Kawasan Malioboro", Address: "Jl. Malioboro, Sosromenduran, Kota Yogyakarta", Lat: -7.7926, Lng: 110.3658, Status: "Full", Type: "Public Area", Capacity: 100},
	{ID: 5, Name: "Universitas Muhammadiyah Yogyakarta (UMY)", Address: "Jl. Brawijaya, Kasihan, Bantul", Lat: -7.8113, Lng: 110.3207, Status: "Maintenance", Type: "Campus", Capacity: 15},
	{ID: 6, Name: "Candi Prambanan Park", Address: "Jl. Raya Solo - Yogyakarta No.16, Kranggan", Lat: -7.752, Lng: 110.4914, Status: "Active", Type: "Tourism", Capacity: 30},
}

var redeemOptions = []model.RedeemOption{
	{ID: "gopay", Name: "GoPay"},
	{ID: "ovo", Name: "OVO"},
	{ID: "dana", Name: "DANA"},
	{ID: "bank", Name: "Bank Transfer"},
}

func Locations() []model.Location {
	result := make([]model.Location, len(locations))
	copy(result, locations)
	return result
}

func RedeemOptions() []model.RedeemOption {
	result := make([]model.RedeemOption, len(redeemOptions))
	copy(result, redeemOptions)
	return result
}
