package hh

// data-qa markers of the hh.ru search results page. These are owned by the
// site and change without notice; keep them all in one place.
const (
	selCard       = `[data-qa="vacancy-serp__vacancy"]`
	selApplyBtn   = `[data-qa="vacancy-serp__vacancy_response"]`
	selTitleText  = `[data-qa="serp-item__title-text"]`
	selTitleLink  = `a[data-qa="serp-item__title"]`
	selWatchers   = `span:has-text("Сейчас смотрят")`
	selSearchArea = `input[data-qa="search-input"]`
	selSearchBtn  = `button[data-qa="search-button"]`
	selProfile    = `[data-qa="mainmenu_applicantProfile"]`

	//apply flow
	selSuccessToast = `#dialog-description:has-text("Отклик отправлен")`
	selDialog       = `[role="dialog"]`
	selRequiredHint = `[data-qa="form-helper-description"]:has-text("Сопроводительное письмо обязательное")`
	selLetterInput  = `[data-qa="vacancy-response-popup-form-letter-input"]`
	selModalClose   = `[data-qa="response-popup-close"]`

	//redirect target ("employer questions" page)
	selTestContainer = `[data-qa="title-container"]`
	selTestDesc      = `[data-qa="title-description"]:has-text("Для отклика необходимо ответить")`

	//vacancy page
	selDescription = `[data-qa="vacancy-description"]`

	//hide-from-listing controls
	selHideIcon = `button[data-qa="vacancy__blacklist-show-add"]`
	selHideMenu = `button[data-qa="vacancy__blacklist-menu-add-vacancy"]`
)
