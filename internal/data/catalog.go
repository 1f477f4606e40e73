// Package data holds the read-only reference catalogs that stand in for a
// real backend dataset: package offers, selectable regions and the input
// screen enums.
package data

import "github.com/traction-team/korail-mate/backend/internal/model/recommend"

// Purposes lists the selectable travel purposes, in screen order.
var Purposes = []string{
	"체험·액티비티",
	"문화·예술·역사",
	"자연과 함께",
	"여유롭게 힐링",
	"관광보다 먹방",
	"쇼핑은 열정적으로",
	"여행지 느낌 물씬",
	"유명 관광지 필수",
	"SNS 핫플",
}

// Intensities lists the schedule intensity options.
var Intensities = []string{"여유", "중간", "강행군"}

// People lists the party size options on the recommendation input screen.
var People = []string{"혼자서", "단둘이", "3명 이상"}

// Regions lists the KTX destination regions offered on the input screens.
var Regions = []string{"서울", "부산", "대전", "대구", "광주", "강릉", "전주", "여수", "경주"}

// Packages is the static offer catalog the matcher scores against.
func Packages() []recommend.PackageItem {
	return []recommend.PackageItem{
		{
			ID: "pkg-busan-healing", Title: "부산 해운대 힐링 패키지",
			Region: "부산", Period: recommend.PeriodOneNight,
			Purposes: []string{"여유롭게 힐링", "자연과 함께"},
			Price:    189000, Provider: "코레일관광개발",
		},
		{
			ID: "pkg-busan-food", Title: "부산 먹방 투어",
			Region: "부산", Period: recommend.PeriodOneNight,
			Purposes: []string{"관광보다 먹방", "SNS 핫플"},
			Price:    159000, Provider: "레일트립",
		},
		{
			ID: "pkg-seoul-culture", Title: "서울 고궁·미술관 산책",
			Region: "서울", Period: recommend.PeriodDayTrip,
			Purposes: []string{"문화·예술·역사", "유명 관광지 필수"},
			Price:    69000, Provider: "코레일관광개발",
		},
		{
			ID: "pkg-seoul-shopping", Title: "서울 쇼핑 올인 패키지",
			Region: "서울", Period: recommend.PeriodOneNight,
			Purposes: []string{"쇼핑은 열정적으로", "SNS 핫플"},
			Price:    210000, Provider: "트립앤레일",
		},
		{
			ID: "pkg-gangneung-sea", Title: "강릉 바다 뷰 기차 여행",
			Region: "강릉", Period: recommend.PeriodOneNight,
			Purposes: []string{"자연과 함께", "여유롭게 힐링", "SNS 핫플"},
			Price:    175000, Provider: "레일트립",
		},
		{
			ID: "pkg-gangneung-coffee", Title: "강릉 커피거리 당일 코스",
			Region: "강릉", Period: recommend.PeriodDayTrip,
			Purposes: []string{"여행지 느낌 물씬", "관광보다 먹방"},
			Price:    89000, Provider: "트립앤레일",
		},
		{
			ID: "pkg-jeonju-hanok", Title: "전주 한옥마을 문화 체험",
			Region: "전주", Period: recommend.PeriodOneNight,
			Purposes: []string{"문화·예술·역사", "관광보다 먹방", "여행지 느낌 물씬"},
			Price:    145000, Provider: "코레일관광개발",
		},
		{
			ID: "pkg-yeosu-night", Title: "여수 밤바다 낭만 패키지",
			Region: "여수", Period: recommend.PeriodTwoNights,
			Purposes: []string{"여유롭게 힐링", "SNS 핫플", "자연과 함께"},
			Price:    239000, Provider: "레일트립",
		},
		{
			ID: "pkg-gyeongju-history", Title: "경주 천년 고도 역사 기행",
			Region: "경주", Period: recommend.PeriodTwoNights,
			Purposes: []string{"문화·예술·역사", "유명 관광지 필수"},
			Price:    225000, Provider: "코레일관광개발",
		},
		{
			ID: "pkg-daejeon-activity", Title: "대전 과학·액티비티 패키지",
			Region: "대전", Period: recommend.PeriodDayTrip,
			Purposes: []string{"체험·액티비티"},
			Price:    75000, Provider: "트립앤레일",
		},
		{
			ID: "pkg-daegu-food", Title: "대구 근대골목 먹방 로드",
			Region: "대구", Period: recommend.PeriodOneNight,
			Purposes: []string{"관광보다 먹방", "문화·예술·역사"},
			Price:    132000, Provider: "레일트립",
		},
		{
			ID: "pkg-gwangju-art", Title: "광주 예술 여행 3박 4일",
			Region: "광주", Period: recommend.PeriodThreeNights,
			Purposes: []string{"문화·예술·역사", "여유롭게 힐링"},
			Price:    310000, Provider: "코레일관광개발",
		},
	}
}
