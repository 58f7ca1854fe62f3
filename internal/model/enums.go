package model

// Category 达人内容垂类
type Category string

const (
	CategoryFitness      Category = "Fitness"
	CategoryNutrition    Category = "Nutrition"
	CategoryWellness     Category = "Wellness"
	CategoryBodybuilding Category = "Bodybuilding"
	CategoryYoga         Category = "Yoga"
)

// Categories 全部垂类，顺序固定
var Categories = []Category{CategoryFitness, CategoryNutrition, CategoryWellness, CategoryBodybuilding, CategoryYoga}

// Gender 达人性别
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

// Platform 投放平台；Post.Platform 与 TrackingEvent.Source 共用
type Platform string

const (
	PlatformInstagram Platform = "Instagram"
	PlatformYouTube   Platform = "YouTube"
	PlatformTwitter   Platform = "Twitter"
)

var Platforms = []Platform{PlatformInstagram, PlatformYouTube, PlatformTwitter}

// Brand 合作品牌
type Brand string

const (
	BrandMuscleBlaze Brand = "MuscleBlaze"
	BrandHKVitals    Brand = "HKVitals"
	BrandGritzo      Brand = "Gritzo"
)

var Brands = []Brand{BrandMuscleBlaze, BrandHKVitals, BrandGritzo}

// PayoutBasis 结算口径
type PayoutBasis string

const (
	BasisPost  PayoutBasis = "post"
	BasisOrder PayoutBasis = "order"
)

func (c Category) Valid() bool {
	return contains(Categories, c)
}

func (g Gender) Valid() bool {
	return contains(Genders, g)
}

func (p Platform) Valid() bool {
	return contains(Platforms, p)
}

func (b Brand) Valid() bool {
	return contains(Brands, b)
}

func (b PayoutBasis) Valid() bool {
	return b == BasisPost || b == BasisOrder
}

// ParseCategory 解析垂类，未知值返回 false
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	return c, c.Valid()
}

// ParsePlatform 解析平台，未知值返回 false
func ParsePlatform(s string) (Platform, bool) {
	p := Platform(s)
	return p, p.Valid()
}

// ParseBrand 解析品牌，未知值返回 false
func ParseBrand(s string) (Brand, bool) {
	b := Brand(s)
	return b, b.Valid()
}

func contains[T comparable](list []T, v T) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
