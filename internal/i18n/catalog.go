package i18n

// catalogs maps language code -> key -> text.
var catalogs = map[string]map[string]string{
	"en": {
		"currency_symbol":         "$",
		"balance":                 "Balance",
		"date":                    "Date",
		"description":             "Description",
		"type":                    "Type",
		"amount":                  "Amount",
		"category":                "Category",
		"income":                  "Income",
		"expense":                 "Expense",
		"total_expenses":          "Total expenses",
		"no_transactions":         "No transactions.",
		"no_expenses":             "No expenses to show.",
		"expenses_by_category":    "Expenses by Category",
		"transaction_added":       "Transaction added.",
		"transaction_updated":     "Transaction updated.",
		"transaction_deleted":     "Transaction deleted.",
		"transaction_not_found":   "Transaction not found.",
		"currency_updated_status": "Currency settings updated.",
		"currency_default_option": "Default (from language)",
		"language_changed":        "Language changed.",
		"theme_changed":           "Theme changed.",
		"category_salary":         "Salary",
		"category_freelance":      "Freelance",
		"category_investment":     "Investment",
		"category_gift":           "Gift",
		"category_other_income":   "Other Income",
		"category_food":           "Food",
		"category_transport":      "Transport",
		"category_housing":        "Housing",
		"category_utilities":      "Utilities",
		"category_healthcare":     "Healthcare",
		"category_entertainment":  "Entertainment",
		"category_education":      "Education",
		"category_shopping":       "Shopping",
		"category_other_expense":  "Other Expense",
		"description_empty_error": "Description cannot be empty.",
		"amount_invalid_error":    "Amount must be greater than zero.",
		"category_empty_error":    "Please select a category.",
		"date_invalid_error":      "Date is not valid.",
		"type_invalid_error":      "Type must be income or expense.",
	},
	"ar": {
		"currency_symbol":         "ر.س",
		"balance":                 "الرصيد",
		"date":                    "التاريخ",
		"description":             "الوصف",
		"type":                    "النوع",
		"amount":                  "المبلغ",
		"category":                "الفئة",
		"income":                  "دخل",
		"expense":                 "مصروف",
		"total_expenses":          "إجمالي المصروفات",
		"no_transactions":         "لا توجد معاملات.",
		"no_expenses":             "لا توجد مصروفات لعرضها.",
		"expenses_by_category":    "المصروفات حسب الفئة",
		"transaction_added":       "تمت إضافة المعاملة.",
		"transaction_updated":     "تم تحديث المعاملة.",
		"transaction_deleted":     "تم حذف المعاملة.",
		"transaction_not_found":   "المعاملة غير موجودة.",
		"currency_updated_status": "تم تحديث إعدادات العملة.",
		"currency_default_option": "الافتراضي (حسب اللغة)",
		"language_changed":        "تم تغيير اللغة.",
		"theme_changed":           "تم تغيير المظهر.",
		"category_salary":         "راتب",
		"category_freelance":      "عمل حر",
		"category_investment":     "استثمار",
		"category_gift":           "هدية",
		"category_other_income":   "دخل آخر",
		"category_food":           "طعام",
		"category_transport":      "مواصلات",
		"category_housing":        "سكن",
		"category_utilities":      "خدمات",
		"category_healthcare":     "رعاية صحية",
		"category_entertainment":  "ترفيه",
		"category_education":      "تعليم",
		"category_shopping":       "تسوق",
		"category_other_expense":  "مصروف آخر",
		"description_empty_error": "لا يمكن أن يكون الوصف فارغًا.",
		"amount_invalid_error":    "يجب أن يكون المبلغ أكبر من صفر.",
		"category_empty_error":    "الرجاء اختيار فئة.",
		"date_invalid_error":      "التاريخ غير صالح.",
		"type_invalid_error":      "يجب أن يكون النوع دخلًا أو مصروفًا.",
	},
}
