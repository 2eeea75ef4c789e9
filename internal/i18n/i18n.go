// Package i18n holds the locale routing rules and the small string
// table the server itself renders. Arabic is the site default.
package i18n

const (
	LocaleArabic  = "ar"
	LocaleEnglish = "en"

	// DefaultLocale is where the bare root redirects.
	DefaultLocale = LocaleArabic
)

// Locales lists the supported path locales in sitemap order.
var Locales = []string{LocaleArabic, LocaleEnglish}

// Supported reports whether the path segment is a known locale.
func Supported(locale string) bool {
	for _, l := range Locales {
		if l == locale {
			return true
		}
	}
	return false
}

// Dir returns the writing direction attribute for the locale.
func Dir(locale string) string {
	if locale == LocaleArabic {
		return "rtl"
	}
	return "ltr"
}

var messages = map[string]map[string]string{
	LocaleEnglish: {
		"home.title":                  "Home",
		"home.heroTitle":              "Everything your desk needs",
		"home.subtitle":               "Stationery, school supplies and writing tools, delivered with a message.",
		"home.description":            "Al-Andalus Library offers office supplies, stationery and school essentials.",
		"home.featured":               "Featured products",
		"home.browseAll":              "Browse all products",
		"products.title":              "Our Products",
		"products.subtitle":           "Browse the full stationery catalog",
		"products.description":        "Explore notebooks, pens, school bags and office supplies at Al-Andalus Library.",
		"products.searchPlaceholder":  "Search products...",
		"products.noResults":          "No products found",
		"products.noResultsDesc":      "Try a different search term or clear the filters.",
		"products.clearFilters":       "Clear filters",
		"products.showing":            "Showing",
		"products.of":                 "of",
		"products.items":              "products",
		"pagination.previous":         "Previous",
		"pagination.next":             "Next",
		"product.inStock":             "In stock",
		"product.outOfStock":          "Out of stock",
		"product.related":             "Related products",
		"product.contactWhatsApp":     "Contact us on WhatsApp",
		"product.notFound.title":      "Product Not Found",
		"product.notFound.desc":       "The requested product was not found.",
		"product.backToProducts":      "Back to products",
		"product.errorTitle":          "Error Loading Product",
		"product.errorDesc":           "An error occurred while loading product data.",
		"notFound.title":              "Page Not Found",
		"notFound.desc":               "The page you are looking for does not exist.",
		"whatsapp.defaultMessage":     "Hello! I need help choosing products from your library.",
		"whatsapp.productMessage":     "Hello! I am interested in: %s",
	},
	LocaleArabic: {
		"home.title":                  "الرئيسية",
		"home.heroTitle":              "كل ما يحتاجه مكتبك",
		"home.subtitle":               "قرطاسية ولوازم مدرسية وأدوات كتابة، تصلك برسالة واحدة.",
		"home.description":            "مكتبة الأندلس توفر أدوات مكتبية وقرطاسية ولوازم مدرسية.",
		"home.featured":               "منتجات مميزة",
		"home.browseAll":              "تصفح جميع المنتجات",
		"products.title":              "منتجاتنا",
		"products.subtitle":           "تصفح كامل كتالوج القرطاسية",
		"products.description":        "اكتشف الدفاتر والأقلام والحقائب المدرسية والأدوات المكتبية في مكتبة الأندلس.",
		"products.searchPlaceholder":  "ابحث عن المنتجات...",
		"products.noResults":          "لا توجد منتجات",
		"products.noResultsDesc":      "جرب كلمة بحث أخرى أو امسح عوامل التصفية.",
		"products.clearFilters":       "مسح عوامل التصفية",
		"products.showing":            "عرض",
		"products.of":                 "من",
		"products.items":              "منتج",
		"pagination.previous":         "السابق",
		"pagination.next":             "التالي",
		"product.inStock":             "متوفر",
		"product.outOfStock":          "غير متوفر",
		"product.related":             "منتجات ذات صلة",
		"product.contactWhatsApp":     "تواصل معنا عبر واتساب",
		"product.notFound.title":      "المنتج غير موجود",
		"product.notFound.desc":       "لم يتم العثور على المنتج المطلوب",
		"product.backToProducts":      "العودة إلى المنتجات",
		"product.errorTitle":          "خطأ في تحميل المنتج",
		"product.errorDesc":           "حدث خطأ أثناء تحميل بيانات المنتج",
		"notFound.title":              "الصفحة غير موجودة",
		"notFound.desc":               "الصفحة التي تبحث عنها غير موجودة.",
		"whatsapp.defaultMessage":     "مرحباً! أحتاج مساعدة في اختيار المنتجات من مكتبتكم.",
		"whatsapp.productMessage":     "مرحباً! أنا مهتم بالمنتج: %s",
	},
}

// T returns the message for key in locale, falling back to English and
// then to the key itself.
func T(locale, key string) string {
	if m, ok := messages[locale]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if s, ok := messages[LocaleEnglish][key]; ok {
		return s
	}
	return key
}
