package checkout

// Governorates are the delivery regions offered on the delivery form.
var Governorates = []string{
	"Cairo",
	"Giza",
	"Alexandria",
	"Damietta",
	"Dakahlia",
	"Sharqia",
	"Qalyubia",
	"Gharbia",
	"Monufia",
	"Beheira",
	"Port Said",
	"Suez",
	"Ismailia",
	"Red Sea",
	"Luxor",
	"Aswan",
	"Fayoum",
	"Minya",
	"Assiut",
	"Sohag",
	"New Valley",
	"Matruh",
	"North Sinai",
	"South Sinai",
	"Kafr El Sheikh",
	"Beni Suef",
	"Qena",
}
